package repositories

import (
	"context"

	"elocalpass/internal/models"

	"github.com/google/uuid"
)

type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Location, error)
	Update(ctx context.Context, location *models.Location) error
	ListByDistributor(ctx context.Context, distributorID uuid.UUID) ([]*models.LocationDetails, error)
}

type locationRepo struct {
	db Pool
}

func NewLocationRepository(db Pool) LocationRepository {
	return &locationRepo{db: db}
}

const locationColumns = `id, distributor_id, user_id, name, is_active, contact_person, email, telephone, notes, created_at, updated_at`

func (r *locationRepo) Create(ctx context.Context, location *models.Location) error {
	query := `
		INSERT INTO locations (id, distributor_id, user_id, name, is_active, contact_person, email, telephone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, location.ID, location.DistributorID, location.UserID, location.Name, location.IsActive, location.ContactPerson, location.Email, location.Telephone, location.Notes)
	return mapError(err)
}

func (r *locationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *locationRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE user_id = $1`
	return r.scanOne(ctx, query, userID)
}

func (r *locationRepo) scanOne(ctx context.Context, query string, arg any) (*models.Location, error) {
	l := &models.Location{}
	err := conn(ctx, r.db).QueryRow(ctx, query, arg).Scan(&l.ID, &l.DistributorID, &l.UserID, &l.Name, &l.IsActive, &l.ContactPerson, &l.Email, &l.Telephone, &l.Notes, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return l, nil
}

func (r *locationRepo) Update(ctx context.Context, location *models.Location) error {
	query := `
		UPDATE locations
		SET name = $1, contact_person = $2, email = $3, telephone = $4, notes = $5, updated_at = NOW()
		WHERE id = $6
	`
	tag, err := conn(ctx, r.db).Exec(ctx, query, location.Name, location.ContactPerson, location.Email, location.Telephone, location.Notes, location.ID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *locationRepo) ListByDistributor(ctx context.Context, distributorID uuid.UUID) ([]*models.LocationDetails, error) {
	query := `
		SELECT l.id, l.distributor_id, l.user_id, l.name, l.is_active, l.contact_person, l.email, l.telephone, l.notes, l.created_at, l.updated_at,
		       u.id, u.name, u.email, u.role, u.is_active, u.created_at
		FROM locations l
		JOIN users u ON u.id = l.user_id
		WHERE l.distributor_id = $1
		ORDER BY l.created_at DESC
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, distributorID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var locations []*models.LocationDetails
	for rows.Next() {
		l := &models.LocationDetails{}
		if err := rows.Scan(&l.ID, &l.DistributorID, &l.UserID, &l.Name, &l.IsActive, &l.ContactPerson, &l.Email, &l.Telephone, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
			&l.User.ID, &l.User.Name, &l.User.Email, &l.User.Role, &l.User.IsActive, &l.User.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		l.Sellers = []models.Seller{}
		locations = append(locations, l)
	}
	return locations, mapError(rows.Err())
}

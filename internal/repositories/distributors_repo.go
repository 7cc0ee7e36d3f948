package repositories

import (
	"context"

	"elocalpass/internal/models"

	"github.com/google/uuid"
)

// DistributorListFilter narrows and orders the admin distributor list.
type DistributorListFilter struct {
	Active   *bool
	SortDesc bool
}

type DistributorRepository interface {
	Create(ctx context.Context, distributor *models.Distributor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Distributor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Distributor, error)
	Update(ctx context.Context, distributor *models.Distributor) error
	List(ctx context.Context, filter DistributorListFilter) ([]*models.DistributorSummary, error)
}

type distributorRepo struct {
	db Pool
}

func NewDistributorRepository(db Pool) DistributorRepository {
	return &distributorRepo{db: db}
}

const distributorColumns = `id, user_id, name, is_active, contact_person, email, telephone, notes, created_at, updated_at`

func (r *distributorRepo) Create(ctx context.Context, distributor *models.Distributor) error {
	query := `
		INSERT INTO distributors (id, user_id, name, is_active, contact_person, email, telephone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, distributor.ID, distributor.UserID, distributor.Name, distributor.IsActive, distributor.ContactPerson, distributor.Email, distributor.Telephone, distributor.Notes)
	return mapError(err)
}

func (r *distributorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Distributor, error) {
	query := `SELECT ` + distributorColumns + ` FROM distributors WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *distributorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Distributor, error) {
	query := `SELECT ` + distributorColumns + ` FROM distributors WHERE user_id = $1`
	return r.scanOne(ctx, query, userID)
}

func (r *distributorRepo) scanOne(ctx context.Context, query string, arg any) (*models.Distributor, error) {
	d := &models.Distributor{}
	err := conn(ctx, r.db).QueryRow(ctx, query, arg).Scan(&d.ID, &d.UserID, &d.Name, &d.IsActive, &d.ContactPerson, &d.Email, &d.Telephone, &d.Notes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return d, nil
}

// Update writes the editable fields only; is_active is owned by the activation engine.
func (r *distributorRepo) Update(ctx context.Context, distributor *models.Distributor) error {
	query := `
		UPDATE distributors
		SET name = $1, contact_person = $2, email = $3, telephone = $4, notes = $5, updated_at = NOW()
		WHERE id = $6
	`
	tag, err := conn(ctx, r.db).Exec(ctx, query, distributor.Name, distributor.ContactPerson, distributor.Email, distributor.Telephone, distributor.Notes, distributor.ID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *distributorRepo) List(ctx context.Context, filter DistributorListFilter) ([]*models.DistributorSummary, error) {
	order := "ASC"
	if filter.SortDesc {
		order = "DESC"
	}
	query := `
		SELECT d.id, d.user_id, d.name, d.is_active, d.contact_person, d.email, d.telephone, d.notes, d.created_at, d.updated_at,
		       u.id, u.name, u.email, u.role, u.is_active, u.created_at,
		       (SELECT COUNT(*) FROM locations l WHERE l.distributor_id = d.id)
		FROM distributors d
		JOIN users u ON u.id = d.user_id
		WHERE ($1::boolean IS NULL OR d.is_active = $1)
		ORDER BY lower(d.name) ` + order

	rows, err := conn(ctx, r.db).Query(ctx, query, filter.Active)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var distributors []*models.DistributorSummary
	for rows.Next() {
		s := &models.DistributorSummary{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.IsActive, &s.ContactPerson, &s.Email, &s.Telephone, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
			&s.User.ID, &s.User.Name, &s.User.Email, &s.User.Role, &s.User.IsActive, &s.User.CreatedAt,
			&s.LocationCount); err != nil {
			return nil, mapError(err)
		}
		distributors = append(distributors, s)
	}
	return distributors, mapError(rows.Err())
}

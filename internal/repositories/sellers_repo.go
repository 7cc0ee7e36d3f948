package repositories

import (
	"context"

	"elocalpass/internal/models"

	"github.com/google/uuid"
)

type SellerRepository interface {
	Create(ctx context.Context, seller *models.Seller) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Seller, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Seller, error)
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]models.Seller, error)
	UpsertConfig(ctx context.Context, config *models.SellerConfig) error
	GetConfig(ctx context.Context, sellerID uuid.UUID) (*models.SellerConfig, error)
}

type sellerRepo struct {
	db Pool
}

func NewSellerRepository(db Pool) SellerRepository {
	return &sellerRepo{db: db}
}

const sellerSelect = `
		SELECT s.id, s.location_id, s.user_id, s.name, u.email, s.is_active, s.created_at, s.updated_at,
		       c.seller_id, c.send_method, c.landing_page_required, c.allow_custom_guests_days,
		       c.default_guests, c.default_days, c.pricing_type, c.fixed_price, c.send_rebuy_email
		FROM sellers s
		JOIN users u ON u.id = s.user_id
		LEFT JOIN seller_configs c ON c.seller_id = s.id
`

func (r *sellerRepo) Create(ctx context.Context, seller *models.Seller) error {
	query := `
		INSERT INTO sellers (id, location_id, user_id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, seller.ID, seller.LocationID, seller.UserID, seller.Name, seller.IsActive)
	return mapError(err)
}

func (r *sellerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	return r.scanOne(ctx, sellerSelect+` WHERE s.id = $1`, id)
}

func (r *sellerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Seller, error) {
	return r.scanOne(ctx, sellerSelect+` WHERE s.user_id = $1`, userID)
}

func (r *sellerRepo) scanOne(ctx context.Context, query string, arg any) (*models.Seller, error) {
	row := conn(ctx, r.db).QueryRow(ctx, query, arg)
	seller, err := scanSeller(row)
	if err != nil {
		return nil, mapError(err)
	}
	return &seller, nil
}

func (r *sellerRepo) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]models.Seller, error) {
	rows, err := conn(ctx, r.db).Query(ctx, sellerSelect+` WHERE s.location_id = $1 ORDER BY s.created_at DESC`, locationID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	sellers := []models.Seller{}
	for rows.Next() {
		seller, err := scanSeller(rows)
		if err != nil {
			return nil, mapError(err)
		}
		sellers = append(sellers, seller)
	}
	return sellers, mapError(rows.Err())
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanSeller reads a sellerSelect row; the config columns are NULL when no configuration exists.
func scanSeller(row rowScanner) (models.Seller, error) {
	var (
		s          models.Seller
		cfgSeller  *uuid.UUID
		sendMethod *string
		landing    *bool
		custom     *bool
		guests     *int
		days       *int
		pricing    *string
		price      *float64
		rebuy      *bool
	)
	err := row.Scan(&s.ID, &s.LocationID, &s.UserID, &s.Name, &s.Email, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		&cfgSeller, &sendMethod, &landing, &custom, &guests, &days, &pricing, &price, &rebuy)
	if err != nil {
		return s, err
	}
	if cfgSeller != nil {
		s.Config = &models.SellerConfig{
			SellerID:              *cfgSeller,
			SendMethod:            deref(sendMethod),
			LandingPageRequired:   deref(landing),
			AllowCustomGuestsDays: deref(custom),
			DefaultGuests:         deref(guests),
			DefaultDays:           deref(days),
			PricingType:           deref(pricing),
			FixedPrice:            deref(price),
			SendRebuyEmail:        deref(rebuy),
		}
	}
	return s, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func (r *sellerRepo) UpsertConfig(ctx context.Context, cfg *models.SellerConfig) error {
	query := `
		INSERT INTO seller_configs (seller_id, send_method, landing_page_required, allow_custom_guests_days,
		                            default_guests, default_days, pricing_type, fixed_price, send_rebuy_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (seller_id) DO UPDATE SET
			send_method = EXCLUDED.send_method,
			landing_page_required = EXCLUDED.landing_page_required,
			allow_custom_guests_days = EXCLUDED.allow_custom_guests_days,
			default_guests = EXCLUDED.default_guests,
			default_days = EXCLUDED.default_days,
			pricing_type = EXCLUDED.pricing_type,
			fixed_price = EXCLUDED.fixed_price,
			send_rebuy_email = EXCLUDED.send_rebuy_email
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, cfg.SellerID, cfg.SendMethod, cfg.LandingPageRequired, cfg.AllowCustomGuestsDays,
		cfg.DefaultGuests, cfg.DefaultDays, cfg.PricingType, cfg.FixedPrice, cfg.SendRebuyEmail)
	return mapError(err)
}

func (r *sellerRepo) GetConfig(ctx context.Context, sellerID uuid.UUID) (*models.SellerConfig, error) {
	query := `
		SELECT seller_id, send_method, landing_page_required, allow_custom_guests_days,
		       default_guests, default_days, pricing_type, fixed_price, send_rebuy_email
		FROM seller_configs
		WHERE seller_id = $1
	`
	c := &models.SellerConfig{}
	err := conn(ctx, r.db).QueryRow(ctx, query, sellerID).Scan(&c.SellerID, &c.SendMethod, &c.LandingPageRequired, &c.AllowCustomGuestsDays,
		&c.DefaultGuests, &c.DefaultDays, &c.PricingType, &c.FixedPrice, &c.SendRebuyEmail)
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

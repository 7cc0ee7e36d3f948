package repositories

import (
	"context"
	"time"

	"elocalpass/internal/models"
)

type QRCodeRepository interface {
	Create(ctx context.Context, qr *models.QRCode) error
	// ListByCustomerEmail returns the customer's codes, newest first.
	ListByCustomerEmail(ctx context.Context, email string) ([]models.QRCode, error)
	// DeactivateExpired clears is_active on codes whose expires_at is before now.
	// Rows are never deleted.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type qrCodeRepo struct {
	db Pool
}

func NewQRCodeRepository(db Pool) QRCodeRepository {
	return &qrCodeRepo{db: db}
}

func (r *qrCodeRepo) Create(ctx context.Context, qr *models.QRCode) error {
	query := `
		INSERT INTO qr_codes (id, code, seller_id, customer_name, customer_email, guests, days, cost,
		                      expires_at, is_active, landing_url, image_object_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, qr.ID, qr.Code, qr.SellerID, qr.CustomerName, qr.CustomerEmail, qr.Guests, qr.Days, qr.Cost,
		qr.ExpiresAt, qr.IsActive, qr.LandingURL, qr.ImageObjectKey)
	return mapError(err)
}

func (r *qrCodeRepo) ListByCustomerEmail(ctx context.Context, email string) ([]models.QRCode, error) {
	query := `
		SELECT id, code, seller_id, customer_name, customer_email, guests, days, cost,
		       expires_at, is_active, landing_url, image_object_key, used_at, created_at
		FROM qr_codes
		WHERE customer_email = $1
		ORDER BY created_at DESC
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, email)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	codes := []models.QRCode{}
	for rows.Next() {
		var q models.QRCode
		if err := rows.Scan(&q.ID, &q.Code, &q.SellerID, &q.CustomerName, &q.CustomerEmail, &q.Guests, &q.Days, &q.Cost,
			&q.ExpiresAt, &q.IsActive, &q.LandingURL, &q.ImageObjectKey, &q.UsedAt, &q.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		codes = append(codes, q)
	}
	return codes, mapError(rows.Err())
}

func (r *qrCodeRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := conn(ctx, r.db).Exec(ctx, `UPDATE qr_codes SET is_active = FALSE WHERE is_active AND expires_at < $1`, now)
	if err != nil {
		return 0, mapError(err)
	}
	return tag.RowsAffected(), nil
}

package repositories

import (
	"context"
	"time"

	"elocalpass/internal/models"

	"github.com/google/uuid"
)

type AccessTokenRepository interface {
	Create(ctx context.Context, token *models.CustomerAccessToken) error
	GetByToken(ctx context.Context, token string) (*models.CustomerAccessToken, error)
	// MarkUsed records the first redemption only; later calls leave used_at untouched.
	MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}

type accessTokenRepo struct {
	db Pool
}

func NewAccessTokenRepository(db Pool) AccessTokenRepository {
	return &accessTokenRepo{db: db}
}

func (r *accessTokenRepo) Create(ctx context.Context, t *models.CustomerAccessToken) error {
	query := `
		INSERT INTO customer_access_tokens (id, token, qr_code_id, customer_email, customer_name, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, t.ID, t.Token, t.QRCodeID, t.CustomerEmail, t.CustomerName, t.ExpiresAt)
	return mapError(err)
}

func (r *accessTokenRepo) GetByToken(ctx context.Context, token string) (*models.CustomerAccessToken, error) {
	query := `
		SELECT id, token, qr_code_id, customer_email, customer_name, expires_at, used_at, created_at
		FROM customer_access_tokens
		WHERE token = $1
	`
	t := &models.CustomerAccessToken{}
	err := conn(ctx, r.db).QueryRow(ctx, query, token).Scan(&t.ID, &t.Token, &t.QRCodeID, &t.CustomerEmail, &t.CustomerName, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *accessTokenRepo) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE customer_access_tokens SET used_at = $1 WHERE id = $2 AND used_at IS NULL`
	_, err := conn(ctx, r.db).Exec(ctx, query, at, id)
	return mapError(err)
}

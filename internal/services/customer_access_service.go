package services

import (
	"context"
	"strings"
	"time"

	"elocalpass/internal/models"
	"elocalpass/internal/repositories"

	"go.uber.org/zap"
)

// CustomerAccess is what a redeemed token resolves to.
type CustomerAccess struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Language string          `json:"language"`
	QRCodes  []models.QRCode `json:"qrCodes"`
}

type CustomerAccessService interface {
	// Redeem resolves a token into the customer's codes, newest first.
	// A token stays redeemable until it expires, however often it is read.
	Redeem(ctx context.Context, token string) (*CustomerAccess, error)
}

type customerAccessService struct {
	tokens  repositories.AccessTokenRepository
	qrCodes repositories.QRCodeRepository
	images  QRImageStore
	now     func() time.Time
	logger  *zap.Logger
}

type CustomerAccessOption func(*customerAccessService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CustomerAccessOption {
	return func(s *customerAccessService) { s.now = now }
}

// WithImageStore enables presigned image URLs on returned codes.
func WithImageStore(images QRImageStore) CustomerAccessOption {
	return func(s *customerAccessService) { s.images = images }
}

func NewCustomerAccessService(tokens repositories.AccessTokenRepository, qrCodes repositories.QRCodeRepository, logger *zap.Logger, opts ...CustomerAccessOption) CustomerAccessService {
	s := &customerAccessService{
		tokens:  tokens,
		qrCodes: qrCodes,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *customerAccessService) Redeem(ctx context.Context, token string) (*CustomerAccess, error) {
	// Tokens are looked up exactly as sent; surrounding whitespace is not stripped.
	if strings.TrimSpace(token) == "" {
		return nil, &ValidationError{Fields: map[string]string{"token": "is required"}}
	}

	accessToken, err := s.tokens.GetByToken(ctx, token)
	if err != nil {
		return nil, translate(err, "access token")
	}

	now := s.now()
	if accessToken.Expired(now) {
		return nil, ErrExpired
	}

	if accessToken.UsedAt == nil {
		if err := s.tokens.MarkUsed(ctx, accessToken.ID, now); err != nil {
			s.logger.Warn("failed to record token use",
				zap.String("token_id", accessToken.ID.String()),
				zap.Error(err),
			)
		}
	}

	codes, err := s.qrCodes.ListByCustomerEmail(ctx, accessToken.CustomerEmail)
	if err != nil {
		return nil, translate(err, "qr codes")
	}
	s.attachImageURLs(ctx, codes)

	return &CustomerAccess{
		Name:    accessToken.CustomerName,
		Email:   accessToken.CustomerEmail,
		QRCodes: codes,
	}, nil
}

func (s *customerAccessService) attachImageURLs(ctx context.Context, codes []models.QRCode) {
	if s.images == nil {
		return
	}
	for i := range codes {
		if codes[i].ImageObjectKey == nil {
			continue
		}
		url, err := s.images.PresignedURL(ctx, *codes[i].ImageObjectKey)
		if err != nil {
			s.logger.Warn("failed to presign qr image", zap.String("qr_code_id", codes[i].ID.String()), zap.Error(err))
			continue
		}
		codes[i].ImageURL = url
	}
}

package services

import (
	"context"

	"elocalpass/internal/models"
	"elocalpass/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SellerInput struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	LocationID uuid.UUID `json:"locationId"`

	SendMethod            *string  `json:"sendMethod"`
	LandingPageRequired   *bool    `json:"landingPageRequired"`
	AllowCustomGuestsDays *bool    `json:"allowCustomGuestsDays"`
	DefaultGuests         *int     `json:"defaultGuests"`
	DefaultDays           *int     `json:"defaultDays"`
	PricingType           *string  `json:"pricingType"`
	FixedPrice            *float64 `json:"fixedPrice"`
	SendRebuyEmail        *bool    `json:"sendRebuyEmail"`
}

// config applies the submitted overrides to the default configuration.
func (in *SellerInput) config() models.SellerConfig {
	cfg := models.DefaultSellerConfig()
	if in.SendMethod != nil {
		cfg.SendMethod = *in.SendMethod
	}
	if in.LandingPageRequired != nil {
		cfg.LandingPageRequired = *in.LandingPageRequired
	}
	if in.AllowCustomGuestsDays != nil {
		cfg.AllowCustomGuestsDays = *in.AllowCustomGuestsDays
	}
	if in.DefaultGuests != nil {
		cfg.DefaultGuests = *in.DefaultGuests
	}
	if in.DefaultDays != nil {
		cfg.DefaultDays = *in.DefaultDays
	}
	if in.PricingType != nil {
		cfg.PricingType = *in.PricingType
	}
	if in.FixedPrice != nil {
		cfg.FixedPrice = *in.FixedPrice
	}
	if in.SendRebuyEmail != nil {
		cfg.SendRebuyEmail = *in.SendRebuyEmail
	}
	if cfg.PricingType == models.PricingFree {
		cfg.FixedPrice = 0
	}
	return cfg
}

func validateSellerConfig(v *validator, cfg models.SellerConfig) {
	v.check(cfg.SendMethod == models.SendMethodURL || cfg.SendMethod == models.SendMethodQR, "sendMethod", "must be URL or QR")
	v.check(cfg.DefaultGuests >= 1, "defaultGuests", "must be at least 1")
	v.check(cfg.DefaultDays >= 1, "defaultDays", "must be at least 1")
	switch cfg.PricingType {
	case models.PricingFixed, models.PricingVariable, models.PricingFree:
	default:
		v.check(false, "pricingType", "must be FIXED, VARIABLE or FREE")
	}
	v.check(cfg.FixedPrice >= 0, "fixedPrice", "must not be negative")
}

type SellerService interface {
	Create(ctx context.Context, in SellerInput) (*models.Seller, error)
	// ConfigForUser returns the configuration of the seller the user logs in as, or the defaults when none is stored.
	ConfigForUser(ctx context.Context, userID uuid.UUID) (*models.SellerConfig, error)
}

type sellerService struct {
	tx         repositories.TxManager
	users      repositories.UserRepository
	sellers    repositories.SellerRepository
	activation ActivationService
	logger     *zap.Logger
}

func NewSellerService(
	tx repositories.TxManager,
	users repositories.UserRepository,
	sellers repositories.SellerRepository,
	activation ActivationService,
	logger *zap.Logger,
) SellerService {
	return &sellerService{
		tx:         tx,
		users:      users,
		sellers:    sellers,
		activation: activation,
		logger:     logger,
	}
}

func (s *sellerService) Create(ctx context.Context, in SellerInput) (*models.Seller, error) {
	account := AccountInput{Name: in.Name, Email: in.Email, Password: in.Password}
	account.normalize()
	cfg := in.config()

	var v validator
	account.validate(&v, true)
	v.check(in.LocationID != uuid.Nil, "locationId", "is required")
	validateSellerConfig(&v, cfg)
	if err := v.Err(); err != nil {
		return nil, err
	}

	seller := &models.Seller{
		ID:         uuid.New(),
		LocationID: in.LocationID,
		Name:       account.Name,
		Email:      account.Email,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		active, err := s.activation.CanActivateUnder(ctx, models.KindLocation, in.LocationID)
		if err != nil {
			return parentRefError(err, "locationId")
		}
		seller.IsActive = active

		user, err := createOwner(ctx, s.users, &account, models.RoleSeller)
		if err != nil {
			return err
		}
		seller.UserID = user.ID
		if err := s.sellers.Create(ctx, seller); err != nil {
			return translate(parentRefError(err, "locationId"), "seller")
		}

		cfg.SellerID = seller.ID
		if err := s.sellers.UpsertConfig(ctx, &cfg); err != nil {
			return translate(err, "seller config")
		}
		seller.Config = &cfg
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("seller created",
		zap.String("seller_id", seller.ID.String()),
		zap.String("location_id", seller.LocationID.String()),
		zap.Bool("is_active", seller.IsActive),
	)
	return seller, nil
}

func (s *sellerService) ConfigForUser(ctx context.Context, userID uuid.UUID) (*models.SellerConfig, error) {
	seller, err := s.sellers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err, "seller")
	}
	if seller.Config != nil {
		return seller.Config, nil
	}
	cfg := models.DefaultSellerConfig()
	cfg.SellerID = seller.ID
	return &cfg, nil
}

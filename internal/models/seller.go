package models

import (
	"time"

	"github.com/google/uuid"
)

type Seller struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	LocationID uuid.UUID     `json:"locationId" db:"location_id"`
	UserID     uuid.UUID     `json:"userId" db:"user_id"`
	Name       string        `json:"name" db:"name"`
	Email      string        `json:"email" db:"-"`
	IsActive   bool          `json:"isActive" db:"is_active"`
	Config     *SellerConfig `json:"sellerConfigs" db:"-"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`
}

// Send methods for the pass delivered by a seller.
const (
	SendMethodURL = "URL"
	SendMethodQR  = "QR"
)

// Pricing modes for a seller.
const (
	PricingFixed    = "FIXED"
	PricingVariable = "VARIABLE"
	PricingFree     = "FREE"
)

type SellerConfig struct {
	SellerID              uuid.UUID `json:"sellerId" db:"seller_id"`
	SendMethod            string    `json:"sendMethod" db:"send_method"`
	LandingPageRequired   bool      `json:"landingPageRequired" db:"landing_page_required"`
	AllowCustomGuestsDays bool      `json:"allowCustomGuestsDays" db:"allow_custom_guests_days"`
	DefaultGuests         int       `json:"defaultGuests" db:"default_guests"`
	DefaultDays           int       `json:"defaultDays" db:"default_days"`
	PricingType           string    `json:"pricingType" db:"pricing_type"`
	FixedPrice            float64   `json:"fixedPrice" db:"fixed_price"`
	SendRebuyEmail        bool      `json:"sendRebuyEmail" db:"send_rebuy_email"`
}

// DefaultSellerConfig mirrors the values the admin form starts with.
func DefaultSellerConfig() SellerConfig {
	return SellerConfig{
		SendMethod:          SendMethodURL,
		LandingPageRequired: true,
		DefaultGuests:       2,
		DefaultDays:         3,
		PricingType:         PricingFixed,
	}
}

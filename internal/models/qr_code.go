package models

import (
	"time"

	"github.com/google/uuid"
)

type QRCode struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Code           string     `json:"code" db:"code"`
	SellerID       uuid.UUID  `json:"sellerId" db:"seller_id"`
	CustomerName   string     `json:"customerName" db:"customer_name"`
	CustomerEmail  string     `json:"customerEmail" db:"customer_email"`
	Guests         int        `json:"guests" db:"guests"`
	Days           int        `json:"days" db:"days"`
	Cost           float64    `json:"cost" db:"cost"`
	ExpiresAt      time.Time  `json:"expiresAt" db:"expires_at"`
	IsActive       bool       `json:"isActive" db:"is_active"`
	LandingURL     *string    `json:"landingUrl" db:"landing_url"`
	ImageObjectKey *string    `json:"-" db:"image_object_key"`
	ImageURL       string     `json:"imageUrl,omitempty" db:"-"`
	UsedAt         *time.Time `json:"usedAt" db:"used_at"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomerAccessToken grants a customer read access to their own QR codes until ExpiresAt.
type CustomerAccessToken struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Token         string     `json:"-" db:"token"` // Never return in JSON
	QRCodeID      *uuid.UUID `json:"qrCodeId" db:"qr_code_id"`
	CustomerEmail string     `json:"customerEmail" db:"customer_email"`
	CustomerName  string     `json:"customerName" db:"customer_name"`
	ExpiresAt     time.Time  `json:"expiresAt" db:"expires_at"`
	UsedAt        *time.Time `json:"usedAt" db:"used_at"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

// Expired reports whether the token can no longer be redeemed at now.
func (t *CustomerAccessToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Session token response returned by login
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresIn   int       `json:"expiresIn"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	ID            uuid.UUID `json:"id" db:"id"`
	DistributorID uuid.UUID `json:"distributorId" db:"distributor_id"`
	UserID        uuid.UUID `json:"userId" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	IsActive      bool      `json:"isActive" db:"is_active"`
	ContactPerson *string   `json:"contactPerson" db:"contact_person"`
	Email         *string   `json:"email" db:"email"`
	Telephone     *string   `json:"telephone" db:"telephone"`
	Notes         *string   `json:"notes" db:"notes"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

type LocationDetails struct {
	Location
	User    UserSummary `json:"user"`
	Sellers []Seller    `json:"sellers"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Distributor struct {
	ID            uuid.UUID `json:"id" db:"id"`
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

// DistributorSummary is the list view of a distributor.
type DistributorSummary struct {
	Distributor
	User          UserSummary `json:"user"`
	LocationCount int         `json:"locationCount"`
}

// DistributorDetails is a distributor with its whole subtree.
type DistributorDetails struct {
	Distributor
	User      UserSummary       `json:"user"`
	Locations []LocationDetails `json:"locations"`
}

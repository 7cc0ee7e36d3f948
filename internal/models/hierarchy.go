package models

import (
	"fmt"

	"github.com/google/uuid"
)

// EntityKind identifies one level of the Distributor → Location → Seller tree.
type EntityKind string

const (
	KindDistributor EntityKind = "distributor"
	KindLocation    EntityKind = "location"
	KindSeller      EntityKind = "seller"
)

// Parent returns the kind one level up. Distributors are roots.
func (k EntityKind) Parent() (EntityKind, bool) {
	switch k {
	case KindLocation:
		return KindDistributor, true
	case KindSeller:
		return KindLocation, true
	}
	return "", false
}

func (k EntityKind) Valid() bool {
	switch k {
	case KindDistributor, KindLocation, KindSeller:
		return true
	}
	return false
}

func (k EntityKind) String() string { return string(k) }

// EntityRef points at one node of the tree.
type EntityRef struct {
	Kind EntityKind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

func (r EntityRef) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

// Node is the activation-relevant projection of a tree entity.
type Node struct {
	Ref      EntityRef  `json:"ref"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
	Name     string     `json:"name"`
	Active   bool       `json:"isActive"`
}

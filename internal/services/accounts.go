package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"elocalpass/internal/models"
	"elocalpass/internal/repositories"

	"github.com/google/uuid"
)

const minPasswordLength = 6

// AccountInput carries the fields shared by every tree entity form.
type AccountInput struct {
	Name          string  `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Telephone     *string `json:"telephone"`
	Notes         *string `json:"notes"`
}

func (in *AccountInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.ContactPerson = trimOptional(in.ContactPerson)
	in.Telephone = trimOptional(in.Telephone)
	in.Notes = trimOptional(in.Notes)
}

// validate checks the input; password is required only when creating.
func (in *AccountInput) validate(v *validator, creating bool) {
	v.check(in.Name != "", "name", "is required")
	v.check(in.Email != "", "email", "is required")
	if in.Email != "" {
		_, err := mail.ParseAddress(in.Email)
		v.check(err == nil, "email", "is not a valid address")
	}
	if creating {
		v.check(in.Password != "", "password", "is required")
	}
	if in.Password != "" {
		v.check(len(in.Password) >= minPasswordLength, "password", "must be at least 6 characters")
	}
}

// displayName is the owning user's name: the contact person when given.
func (in *AccountInput) displayName() string {
	if in.ContactPerson != nil {
		return *in.ContactPerson
	}
	return in.Name
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// createOwner inserts the login account that owns a tree entity.
func createOwner(ctx context.Context, users repositories.UserRepository, in *AccountInput, role models.Role) (*models.User, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.displayName(),
		Role:         role,
		IsActive:     true,
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, translate(err, "user")
	}
	return user, nil
}

// updateOwner syncs the owning account's profile and, when given, its password.
func updateOwner(ctx context.Context, users repositories.UserRepository, userID uuid.UUID, in *AccountInput) error {
	if err := users.UpdateProfile(ctx, userID, in.displayName(), in.Email); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrEmailTaken
		}
		return translate(err, "user")
	}
	if in.Password == "" {
		return nil
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return err
	}
	return translate(users.UpdatePassword(ctx, userID, hash), "user")
}

package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"elocalpass/internal/models"
	"elocalpass/internal/repositories"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrExpired            = errors.New("expired")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("account is inactive")
)

// ValidationError lists malformed input fields and why each was rejected.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validator collects field errors; Err returns nil when none were added.
type validator struct {
	fields map[string]string
}

func (v *validator) check(ok bool, field, msg string) {
	if ok {
		return
	}
	if v.fields == nil {
		v.fields = map[string]string{}
	}
	if _, exists := v.fields[field]; !exists {
		v.fields[field] = msg
	}
}

func (v *validator) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

// BlockedError rejects an activation because an ancestor is inactive.
type BlockedError struct {
	Target  models.EntityRef
	Blocker models.EntityRef
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("Cannot activate %s: %s must be active first", e.Target.Kind, e.Blocker.Kind)
}

// translate maps repository sentinels onto the service taxonomy.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("%s %w", what, ErrNotFound)
	case errors.Is(err, repositories.ErrDuplicate), errors.Is(err, repositories.ErrStaleWrite):
		return fmt.Errorf("%s: %w", what, ErrConflict)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// parentRefError reports a missing parent named by a request field as a
// validation failure rather than a 404 on the request itself.
func parentRefError(err error, field string) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, repositories.ErrForeignKey) {
		return &ValidationError{Fields: map[string]string{field: "does not exist"}}
	}
	return err
}

// ErrEmailTaken is returned when a user account already uses the email.
var ErrEmailTaken = fmt.Errorf("email already in use: %w", ErrConflict)

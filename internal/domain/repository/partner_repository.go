// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bitefeed/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for partner persistence.
var (
	// ErrPartnerNotFound is returned when a food partner is not found.
	ErrPartnerNotFound = errors.New("food partner not found")
	// ErrDuplicatePartner is returned when the email is already registered as a partner.
	ErrDuplicatePartner = errors.New("food partner already exists")
)

// PartnerRepository defines the standard operations for food partner persistence.
type PartnerRepository interface {
	// FindByID retrieves a single partner by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodPartner, error)

	// FindByEmail retrieves a single partner by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.FoodPartner, error)

	// Create persists a new partner entity to the storage.
	Create(ctx context.Context, partner *entity.FoodPartner) error
}

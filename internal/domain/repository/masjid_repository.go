// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for masjid persistence.
var (
	// ErrMasjidNotFound is returned when a masjid is not found.
	ErrMasjidNotFound = errors.New("masjid not found")
)

// MasjidRepository defines read access to masjids. Registration and approval live elsewhere.
type MasjidRepository interface {
	// FindMasjidByID retrieves a masjid by its unique ID.
	FindMasjidByID(ctx context.Context, id uuid.UUID) (*entity.Masjid, error)

	// FindMasjidsByIDs retrieves every masjid in ids. Missing IDs are omitted.
	FindMasjidsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Masjid, error)
}

package repository

import (
	"context"
	"time"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for broadcast persistence.
var (
	// ErrBroadcastNotFound is returned when a broadcast is not found.
	ErrBroadcastNotFound = errors.New("broadcast not found")
	// ErrDuplicateBroadcast is returned when a non-failed broadcast already exists for the prayer and day.
	ErrDuplicateBroadcast = errors.New("broadcast already exists for this prayer and day")
	// ErrBroadcastStateChanged is returned when a transition finds the row outside the expected statuses.
	ErrBroadcastStateChanged = errors.New("broadcast status changed concurrently")
)

// BroadcastTransition describes a status change and the columns written with it.
// Zero-valued optional fields are left untouched.
type BroadcastTransition struct {
	To           entity.BroadcastStatus
	StartedAt    *time.Time
	EndedAt      *time.Time
	EndedReason  string
	RecordingURL string
	RoomName     string
}

// BroadcastRepository defines the interface for broadcast-related database operations.
type BroadcastRepository interface {
	// CreateBroadcast persists a new broadcast. Returns ErrDuplicateBroadcast on a unique violation.
	CreateBroadcast(ctx context.Context, broadcast *entity.Broadcast) error

	// FindBroadcastByID retrieves a broadcast by its unique ID from the primary.
	FindBroadcastByID(ctx context.Context, id uuid.UUID) (*entity.Broadcast, error)

	// ExistsActiveForDay reports whether a non-failed broadcast for (masjid, prayer) was
	// scheduled or started within [dayStart, dayEnd).
	ExistsActiveForDay(ctx context.Context, masjidID uuid.UUID, prayer entity.PrayerName, dayStart, dayEnd time.Time) (bool, error)

	// TransitionBroadcast applies the transition only while the row is in one of from.
	// Returns ErrBroadcastStateChanged when no row matched.
	TransitionBroadcast(ctx context.Context, id uuid.UUID, from []entity.BroadcastStatus, transition *BroadcastTransition) error

	// UpdateStreamMetadata stores relay output on the broadcast.
	UpdateStreamMetadata(ctx context.Context, id uuid.UUID, metadata entity.StreamMetadata) error

	// FindExpiredLive retrieves live broadcasts started before startedBefore.
	FindExpiredLive(ctx context.Context, startedBefore time.Time) ([]*entity.Broadcast, error)
}

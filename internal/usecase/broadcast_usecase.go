package usecase

import (
	"context"
	"time"

	"masjidcast/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBroadcastInput describes a manually created broadcast.
type CreateBroadcastInput struct {
	MasjidID    uuid.UUID
	PrayerName  *string
	ScheduledAt *time.Time
}

// StartBroadcastOutput is returned to the admin who started a broadcast.
type StartBroadcastOutput struct {
	Broadcast      *entity.Broadcast `json:"broadcast"`
	PublisherToken string            `json:"publisher_token"`
}

// EndBroadcastInput carries the optional fields of a manual end.
type EndBroadcastInput struct {
	RecordingURL string `json:"recording_url"`
	EndedReason  string `json:"ended_reason"`
}

// ListenerToken lets a subscriber join a live room.
type ListenerToken struct {
	Token    string `json:"token"`
	RoomName string `json:"room_name"`
}

// AutoEndPayload is the payload of the delayed auto-end job.
type AutoEndPayload struct {
	BroadcastID uuid.UUID `json:"broadcastId"`
	EndedReason string    `json:"endedReason,omitempty"`
}

// SweepSummary counts what one sweep did.
type SweepSummary struct {
	Completed int
	Skipped   int
	Failed    int
}

// BroadcastUsecase drives broadcasts through their lifecycle.
type BroadcastUsecase interface {
	// CreateBroadcast creates a pending broadcast, or a scheduled one when ScheduledAt is set.
	CreateBroadcast(ctx context.Context, actorID uuid.UUID, input *CreateBroadcastInput) (*entity.Broadcast, error)

	// StartBroadcast opens the audio room and takes a pending or scheduled broadcast live.
	StartBroadcast(ctx context.Context, actorID, broadcastID uuid.UUID) (*StartBroadcastOutput, error)

	// EndBroadcast completes a broadcast that has not ended yet.
	EndBroadcast(ctx context.Context, actorID, broadcastID uuid.UUID, input *EndBroadcastInput) (*entity.Broadcast, error)

	// HandleAutoEnd runs the delayed auto-end job. Early firings are rescheduled.
	HandleAutoEnd(ctx context.Context, payload *AutoEndPayload) error

	// SweepExpired completes every live broadcast older than the maximum duration.
	SweepExpired(ctx context.Context) (*SweepSummary, error)

	// GetBroadcast returns a broadcast by ID.
	GetBroadcast(ctx context.Context, broadcastID uuid.UUID) (*entity.Broadcast, error)

	// IssueListenerToken mints a subscribe-only room token for a follower of the masjid.
	IssueListenerToken(ctx context.Context, userID, broadcastID uuid.UUID) (*ListenerToken, error)
}

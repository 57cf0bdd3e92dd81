package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"masjidcast/config"
	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/constants"
	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/domain/service"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// autoEndTolerance absorbs queue jitter: a job firing this close to the deadline completes.
const autoEndTolerance = time.Second

// endableStatuses are the statuses a manual end may close.
var endableStatuses = []entity.BroadcastStatus{
	entity.BroadcastStatusPending,
	entity.BroadcastStatusScheduled,
	entity.BroadcastStatusLive,
}

type broadcastService struct {
	masjidRepo       repository.MasjidRepository
	broadcastRepo    repository.BroadcastRepository
	subscriptionRepo repository.SubscriptionRepository
	rooms            service.AudioRoomService
	publisher        service.EventPublisher
	queue            service.JobQueue
	maxDuration      time.Duration
	streamProvider   string
	relayEnabled     bool
	logger           *slog.Logger
	now              func() time.Time
}

// BroadcastServiceParams holds dependencies for BroadcastService, injected by Fx.
type BroadcastServiceParams struct {
	fx.In

	Config           *config.Config
	MasjidRepo       repository.MasjidRepository
	BroadcastRepo    repository.BroadcastRepository
	SubscriptionRepo repository.SubscriptionRepository
	Rooms            service.AudioRoomService
	Publisher        service.EventPublisher
	Queue            service.JobQueue
	Logger           *slog.Logger
}

// NewBroadcastService creates a new broadcast lifecycle service instance
func NewBroadcastService(params BroadcastServiceParams) usecase.BroadcastUsecase {
	return &broadcastService{
		masjidRepo:       params.MasjidRepo,
		broadcastRepo:    params.BroadcastRepo,
		subscriptionRepo: params.SubscriptionRepo,
		rooms:            params.Rooms,
		publisher:        params.Publisher,
		queue:            params.Queue,
		maxDuration:      params.Config.Broadcast.MaxDuration,
		streamProvider:   params.Config.Broadcast.StreamProvider,
		relayEnabled:     params.Config.Relay.Enabled,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *broadcastService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateBroadcast creates a manual broadcast, pending or scheduled when a start time is given.
func (s *broadcastService) CreateBroadcast(ctx context.Context, actorID uuid.UUID, input *usecase.CreateBroadcastInput) (*entity.Broadcast, error) {
	masjid, err := ensureMasjidAdmin(ctx, s.masjidRepo, actorID, input.MasjidID)
	if err != nil {
		return nil, err
	}
	if !masjid.IsBroadcastable() {
		return nil, domainerrors.ErrMasjidNotApproved
	}

	now := s.now()
	broadcast := &entity.Broadcast{
		ID:             uuid.New(),
		MasjidID:       masjid.ID,
		Status:         entity.BroadcastStatusPending,
		StreamProvider: s.streamProvider,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	broadcast.RoomName = entity.RoomNameFor(broadcast.ID)

	if input.PrayerName != nil && *input.PrayerName != "" {
		prayer := entity.PrayerName(*input.PrayerName)
		if !prayer.IsValid() {
			return nil, domainerrors.ErrInvalidPrayer.WithDetails(*input.PrayerName)
		}
		broadcast.PrayerName = &prayer
	}

	if input.ScheduledAt != nil {
		scheduledAt := input.ScheduledAt.UTC()
		broadcast.ScheduledAt = &scheduledAt
		broadcast.Status = entity.BroadcastStatusScheduled
	}

	if err := s.broadcastRepo.CreateBroadcast(ctx, broadcast); err != nil {
		if errors.Is(err, repository.ErrDuplicateBroadcast) {
			return nil, domainerrors.ErrConflict.WithDetails("a broadcast for this prayer already exists today")
		}

		return nil, errors.Wrap(err, "failed to create broadcast")
	}

	s.log(ctx).Info("Broadcast created",
		slog.String("broadcast_id", broadcast.ID.String()),
		slog.String("masjid_id", broadcast.MasjidID.String()),
		slog.String("status", broadcast.Status.String()),
	)

	return broadcast, nil
}

// StartBroadcast takes a pending or scheduled broadcast live.
func (s *broadcastService) StartBroadcast(ctx context.Context, actorID, broadcastID uuid.UUID) (*usecase.StartBroadcastOutput, error) {
	broadcast, err := loadBroadcast(ctx, s.broadcastRepo, broadcastID)
	if err != nil {
		return nil, err
	}

	if _, err := ensureMasjidAdmin(ctx, s.masjidRepo, actorID, broadcast.MasjidID); err != nil {
		return nil, err
	}

	now := s.now()
	switch {
	case broadcast.Status == entity.BroadcastStatusLive && broadcast.IsExpired(now, s.maxDuration):
		s.log(ctx).Warn("Closing expired broadcast on start attempt",
			slog.String("broadcast_id", broadcast.ID.String()),
			slog.Duration("elapsed", broadcast.Elapsed(now)),
		)
		if err := s.complete(ctx, broadcast, entity.EndedReasonMaxDuration, "", []entity.BroadcastStatus{entity.BroadcastStatusLive}); err != nil {
			s.log(ctx).Error("Failed to close expired broadcast", slog.String("broadcast_id", broadcast.ID.String()), slog.Any("error", err))
		}

		return nil, domainerrors.ErrBroadcastExpired
	case broadcast.Status == entity.BroadcastStatusLive:
		return nil, domainerrors.ErrBroadcastAlreadyLive
	case broadcast.Status.IsTerminal():
		return nil, domainerrors.ErrBroadcastAlreadyEnded.WithDetails(broadcast.Status.String())
	case !broadcast.Status.CanStart():
		return nil, domainerrors.ErrConflict.WithDetails("cannot start from " + broadcast.Status.String())
	}

	roomName := broadcast.RoomName
	if roomName == "" {
		roomName = entity.RoomNameFor(broadcast.ID)
	}

	if err := s.rooms.CreateRoom(ctx, roomName); err != nil {
		return nil, errors.Wrap(err, "failed to create audio room")
	}

	publisherToken, err := s.rooms.MintAccessToken(publisherIdentity(actorID), roomName, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint publisher token")
	}

	startedAt := now.UTC()
	err = s.broadcastRepo.TransitionBroadcast(ctx, broadcast.ID,
		[]entity.BroadcastStatus{entity.BroadcastStatusPending, entity.BroadcastStatusScheduled},
		&repository.BroadcastTransition{
			To:        entity.BroadcastStatusLive,
			StartedAt: &startedAt,
			RoomName:  roomName,
		})
	if err != nil {
		if errors.Is(err, repository.ErrBroadcastStateChanged) {
			return nil, domainerrors.ErrConflict.WithDetails("broadcast status changed concurrently")
		}

		return nil, errors.Wrap(err, "failed to start broadcast")
	}

	broadcast.Status = entity.BroadcastStatusLive
	broadcast.StartedAt = &startedAt
	broadcast.RoomName = roomName
	broadcast.UpdatedAt = startedAt

	s.log(ctx).Info("Broadcast started",
		slog.String("broadcast_id", broadcast.ID.String()),
		slog.String("masjid_id", broadcast.MasjidID.String()),
		slog.String("room", roomName),
	)

	// The broadcast is live from here on; the sweep closes it if scheduling auto-end fails.
	s.publish(ctx, broadcast, entity.BroadcastEventStart)

	if s.relayEnabled {
		payload := &usecase.RelayJobPayload{BroadcastID: broadcast.ID, RoomName: roomName}
		if err := s.queue.Enqueue(ctx, constants.QueueRelay, constants.JobRelayStart, payload, service.EnqueueOptions{
			DedupeKey: "relay-start:" + broadcast.ID.String(),
		}); err != nil {
			s.log(ctx).Error("Failed to enqueue relay start", slog.String("broadcast_id", broadcast.ID.String()), slog.Any("error", err))
		}
	}

	target := broadcast.AutoEndAt(s.maxDuration)
	initial := &usecase.AutoEndPayload{BroadcastID: broadcast.ID}
	if err := s.scheduleAutoEnd(ctx, initial, s.maxDuration, autoEndKey(broadcast.ID, target)); err != nil {
		s.log(ctx).Error("Failed to schedule auto-end", slog.String("broadcast_id", broadcast.ID.String()), slog.Any("error", err))
	}

	return &usecase.StartBroadcastOutput{
		Broadcast:      broadcast,
		PublisherToken: publisherToken,
	}, nil
}

// EndBroadcast closes a broadcast on the admin's request.
func (s *broadcastService) EndBroadcast(ctx context.Context, actorID, broadcastID uuid.UUID, input *usecase.EndBroadcastInput) (*entity.Broadcast, error) {
	broadcast, err := loadBroadcast(ctx, s.broadcastRepo, broadcastID)
	if err != nil {
		return nil, err
	}

	if _, err := ensureMasjidAdmin(ctx, s.masjidRepo, actorID, broadcast.MasjidID); err != nil {
		return nil, err
	}

	if broadcast.Status.IsTerminal() {
		return nil, domainerrors.ErrBroadcastAlreadyEnded.WithDetails(broadcast.Status.String())
	}

	reason := entity.EndedReasonManual
	recordingURL := ""
	if input != nil {
		if input.EndedReason != "" {
			reason = input.EndedReason
		}
		recordingURL = input.RecordingURL
	}

	if err := s.complete(ctx, broadcast, reason, recordingURL, endableStatuses); err != nil {
		return nil, err
	}

	return broadcast, nil
}

// HandleAutoEnd closes a live broadcast once it reached its maximum duration.
func (s *broadcastService) HandleAutoEnd(ctx context.Context, payload *usecase.AutoEndPayload) error {
	if payload.BroadcastID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("broadcast ID is required")
	}

	broadcast, err := loadBroadcast(ctx, s.broadcastRepo, payload.BroadcastID)
	if err != nil {
		return err
	}

	if broadcast.Status != entity.BroadcastStatusLive || broadcast.StartedAt == nil {
		s.log(ctx).Debug("[Worker] Auto-end skipped, broadcast not live",
			slog.String("broadcast_id", broadcast.ID.String()),
			slog.String("status", broadcast.Status.String()),
		)

		return nil
	}

	now := s.now()
	remaining := s.maxDuration - broadcast.Elapsed(now)
	if remaining > autoEndTolerance {
		target := broadcast.AutoEndAt(s.maxDuration)
		s.log(ctx).Info("[Worker] Auto-end fired early, rescheduling",
			slog.String("broadcast_id", broadcast.ID.String()),
			slog.Duration("remaining", remaining),
		)

		retry := &usecase.AutoEndPayload{BroadcastID: broadcast.ID, EndedReason: payload.EndedReason}

		return s.scheduleAutoEnd(ctx, retry, remaining, autoEndRetryKey(broadcast.ID, target, now))
	}

	reason := payload.EndedReason
	if reason == "" {
		reason = entity.EndedReasonMaxDuration
	}

	err = s.complete(ctx, broadcast, reason, "", []entity.BroadcastStatus{entity.BroadcastStatusLive})
	if errors.Is(err, domainerrors.ErrBroadcastAlreadyEnded) {
		return nil
	}

	return err
}

// SweepExpired closes every live broadcast that outlived the maximum duration.
func (s *broadcastService) SweepExpired(ctx context.Context) (*usecase.SweepSummary, error) {
	now := s.now()

	expired, err := s.broadcastRepo.FindExpiredLive(ctx, now.Add(-s.maxDuration))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find expired broadcasts")
	}

	summary := &usecase.SweepSummary{}
	for _, broadcast := range expired {
		err := s.complete(ctx, broadcast, entity.EndedReasonMaxDuration, "", []entity.BroadcastStatus{entity.BroadcastStatusLive})
		switch {
		case err == nil:
			summary.Completed++
		case errors.Is(err, domainerrors.ErrBroadcastAlreadyEnded):
			summary.Skipped++
		default:
			summary.Failed++
			s.log(ctx).Error("[Scheduler] Failed to close expired broadcast",
				slog.String("broadcast_id", broadcast.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return summary, nil
}

// GetBroadcast returns a broadcast by ID
func (s *broadcastService) GetBroadcast(ctx context.Context, broadcastID uuid.UUID) (*entity.Broadcast, error) {
	return loadBroadcast(ctx, s.broadcastRepo, broadcastID)
}

// IssueListenerToken mints a subscribe-only room token for a follower of the broadcast's masjid.
func (s *broadcastService) IssueListenerToken(ctx context.Context, userID, broadcastID uuid.UUID) (*usecase.ListenerToken, error) {
	broadcast, err := loadBroadcast(ctx, s.broadcastRepo, broadcastID)
	if err != nil {
		return nil, err
	}

	if broadcast.Status != entity.BroadcastStatusLive {
		return nil, domainerrors.ErrBroadcastNotLive
	}

	if err := ensureSubscribed(ctx, s.subscriptionRepo, userID, broadcast.MasjidID); err != nil {
		return nil, err
	}

	token, err := s.rooms.MintAccessToken(listenerIdentity(userID), broadcast.RoomName, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint listener token")
	}

	return &usecase.ListenerToken{Token: token, RoomName: broadcast.RoomName}, nil
}

// complete moves broadcast to completed and releases what it held.
// Only the status transition is fatal, the follow-up steps are logged.
func (s *broadcastService) complete(ctx context.Context, broadcast *entity.Broadcast, reason, recordingURL string, from []entity.BroadcastStatus) error {
	wasLive := broadcast.Status == entity.BroadcastStatusLive
	endedAt := s.now().UTC()

	err := s.broadcastRepo.TransitionBroadcast(ctx, broadcast.ID, from, &repository.BroadcastTransition{
		To:           entity.BroadcastStatusCompleted,
		EndedAt:      &endedAt,
		EndedReason:  reason,
		RecordingURL: recordingURL,
	})
	if err != nil {
		if errors.Is(err, repository.ErrBroadcastStateChanged) {
			return domainerrors.ErrBroadcastAlreadyEnded
		}

		return errors.Wrap(err, "failed to complete broadcast")
	}

	broadcast.Status = entity.BroadcastStatusCompleted
	broadcast.EndedAt = &endedAt
	broadcast.EndedReason = reason
	broadcast.UpdatedAt = endedAt
	if recordingURL != "" {
		broadcast.RecordingURL = recordingURL
	}

	s.log(ctx).Info("Broadcast completed",
		slog.String("broadcast_id", broadcast.ID.String()),
		slog.String("reason", reason),
		slog.Duration("elapsed", broadcast.Elapsed(endedAt)),
	)

	s.publish(ctx, broadcast, entity.BroadcastEventEnd)

	if !wasLive {
		return nil
	}

	if s.relayEnabled {
		payload := &usecase.RelayJobPayload{BroadcastID: broadcast.ID}
		if err := s.queue.Enqueue(ctx, constants.QueueRelay, constants.JobRelayStop, payload, service.EnqueueOptions{
			DedupeKey: "relay-stop:" + broadcast.ID.String(),
		}); err != nil {
			s.log(ctx).Error("Failed to enqueue relay stop", slog.String("broadcast_id", broadcast.ID.String()), slog.Any("error", err))
		}
	}

	if broadcast.RoomName != "" {
		if err := s.rooms.DeleteRoom(ctx, broadcast.RoomName); err != nil {
			s.log(ctx).Warn("Failed to release audio room",
				slog.String("broadcast_id", broadcast.ID.String()),
				slog.String("room", broadcast.RoomName),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func (s *broadcastService) publish(ctx context.Context, broadcast *entity.Broadcast, eventType entity.BroadcastEventType) {
	event := &service.BroadcastEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		BroadcastID: broadcast.ID.String(),
		MasjidID:    broadcast.MasjidID.String(),
		PrayerName:  broadcast.PrayerString(),
		EventType:   string(eventType),
	}

	if err := s.publisher.PublishBroadcastEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to publish broadcast event",
			slog.String("broadcast_id", event.BroadcastID),
			slog.String("event_type", event.EventType),
			slog.Any("error", err),
		)
	}
}

func (s *broadcastService) scheduleAutoEnd(ctx context.Context, payload *usecase.AutoEndPayload, delay time.Duration, dedupeKey string) error {
	err := s.queue.Enqueue(ctx, constants.QueueBroadcasts, constants.JobBroadcastAutoEnd, payload, service.EnqueueOptions{
		Delay:     delay,
		DedupeKey: dedupeKey,
	})
	if err != nil {
		return errors.Wrap(err, "failed to enqueue auto-end")
	}

	return nil
}

func autoEndKey(broadcastID uuid.UUID, target time.Time) string {
	return "auto-end:" + broadcastID.String() + ":" + unixString(target)
}

// autoEndRetryKey is unique per early firing; a reused key would be dropped as a duplicate.
func autoEndRetryKey(broadcastID uuid.UUID, target, firedAt time.Time) string {
	return "auto-end-retry:" + broadcastID.String() + ":" + unixString(target) + ":" + unixString(firedAt)
}

func unixString(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// publisherIdentity is the room identity of a masjid admin.
func publisherIdentity(userID uuid.UUID) string {
	return "publisher-" + userID.String()
}

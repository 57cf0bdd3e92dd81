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
	"golang.org/x/time/rate"
)

// Push payload actions.
const (
	actionGoLive = "GO_LIVE"
	actionEnd    = "END"
)

type notificationService struct {
	masjidRepo       repository.MasjidRepository
	broadcastRepo    repository.BroadcastRepository
	subscriptionRepo repository.SubscriptionRepository
	deviceRepo       repository.DeviceRepository
	logRepo          repository.NotificationLogRepository
	rooms            service.AudioRoomService
	dataSender       service.DataMessageSender
	voipSender       service.VoIPPushSender
	limiter          *rate.Limiter
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Config           *config.Config
	MasjidRepo       repository.MasjidRepository
	BroadcastRepo    repository.BroadcastRepository
	SubscriptionRepo repository.SubscriptionRepository
	DeviceRepo       repository.DeviceRepository
	LogRepo          repository.NotificationLogRepository
	Rooms            service.AudioRoomService
	DataSender       service.DataMessageSender
	VoIPSender       service.VoIPPushSender
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification fan-out service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	limit := rate.Inf
	burst := 1
	if n := params.Config.Notifier; n != nil && n.RatePerSecond > 0 {
		limit = rate.Limit(n.RatePerSecond)
		burst = max(n.Burst, 1)
	}

	return &notificationService{
		masjidRepo:       params.MasjidRepo,
		broadcastRepo:    params.BroadcastRepo,
		subscriptionRepo: params.SubscriptionRepo,
		deviceRepo:       params.DeviceRepo,
		logRepo:          params.LogRepo,
		rooms:            params.Rooms,
		dataSender:       params.DataSender,
		voipSender:       params.VoIPSender,
		limiter:          rate.NewLimiter(limit, burst),
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Notify pushes a broadcast event to every active device of the masjid's subscribers.
func (s *notificationService) Notify(ctx context.Context, event *service.BroadcastEvent) (*usecase.FanOutSummary, error) {
	eventType := entity.BroadcastEventType(event.EventType)
	if !eventType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown event type " + event.EventType)
	}

	broadcastID, err := uuid.Parse(event.BroadcastID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid broadcast ID")
	}

	broadcast, err := loadBroadcast(ctx, s.broadcastRepo, broadcastID)
	if err != nil {
		return nil, err
	}

	recipients, err := s.subscriptionRepo.FindRecipientsByMasjid(ctx, broadcast.MasjidID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipients")
	}

	prayer := event.PrayerName
	if prayer == "" {
		prayer = broadcast.PrayerString()
	}

	now := s.now()
	summary := &usecase.FanOutSummary{Recipients: len(recipients)}
	logs := make([]*entity.NotificationLog, 0, len(recipients))
	var invalidDevices []uuid.UUID

	for _, recipient := range recipients {
		if skipRecipient(recipient.Subscription, eventType, prayer, now) {
			summary.Skipped++

			continue
		}

		device := recipient.Device
		entry := &entity.NotificationLog{
			ID:          uuid.New(),
			BroadcastID: broadcast.ID,
			UserID:      device.UserID,
			DeviceID:    device.ID,
			EventType:   eventType,
			Status:      entity.NotificationStatusFailed,
			Provider:    pushProvider(device),
			SentAt:      now,
		}
		logs = append(logs, entry)

		if device.PushToken() == "" {
			summary.Failed++
			entry.ErrorMessage = "device has no push token"

			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			summary.Failed++
			entry.ErrorMessage = err.Error()

			continue
		}

		payload := s.buildPayload(ctx, broadcast, recipient, eventType, prayer)
		result := s.send(ctx, device, payload)
		entry.SentAt = s.now()

		if !result.OK() {
			summary.Failed++
			entry.ErrorMessage = result.Err.Error()
			if result.InvalidToken {
				invalidDevices = append(invalidDevices, device.ID)
			}
			s.log(ctx).Warn("[Notifier] Push failed",
				slog.String("broadcast_id", broadcast.ID.String()),
				slog.String("device_id", device.ID.String()),
				slog.String("provider", entry.Provider),
				slog.Any("error", result.Err),
			)

			continue
		}

		summary.Sent++
		entry.Status = entity.NotificationStatusSent
		entry.MessageID = result.MessageID
	}

	if len(invalidDevices) > 0 {
		if err := s.deviceRepo.DeactivateDevices(ctx, invalidDevices); err != nil {
			s.log(ctx).Error("[Notifier] Failed to deactivate devices with invalid tokens",
				slog.Int("count", len(invalidDevices)),
				slog.Any("error", err),
			)
		}
	}

	// Pushes are already out; a failed insert must not make the job resend them.
	if len(logs) > 0 {
		if err := s.logRepo.BatchCreateNotificationLogs(ctx, logs); err != nil {
			s.log(ctx).Error("[Notifier] Failed to record notification logs",
				slog.String("broadcast_id", broadcast.ID.String()),
				slog.Int("count", len(logs)),
				slog.Any("error", err),
			)
		}
	}

	s.log(ctx).Info("[Notifier] Fan-out finished",
		slog.String("broadcast_id", broadcast.ID.String()),
		slog.String("event_type", event.EventType),
		slog.Int("recipients", summary.Recipients),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Skipped),
	)

	return summary, nil
}

// skipRecipient applies mute settings. Muted prayers only silence start alerts.
func skipRecipient(sub *entity.Subscription, eventType entity.BroadcastEventType, prayer string, now time.Time) bool {
	if sub == nil {
		return false
	}
	if sub.IsSilenced(now) {
		return true
	}

	return eventType == entity.BroadcastEventStart && sub.Preferences.MutesPrayer(prayer)
}

func pushProvider(device *entity.UserDevice) string {
	if device.UsesVoIP() {
		return constants.PushProviderAPNsVoIP
	}

	return constants.PushProviderFCM
}

func (s *notificationService) send(ctx context.Context, device *entity.UserDevice, payload map[string]string) service.PushResult {
	if device.UsesVoIP() {
		return s.voipSender.SendVoIPPush(ctx, device.VoIPToken, payload)
	}

	return s.dataSender.SendDataMessage(ctx, device.FCMToken, payload)
}

func (s *notificationService) buildPayload(
	ctx context.Context,
	broadcast *entity.Broadcast,
	recipient *entity.NotificationRecipient,
	eventType entity.BroadcastEventType,
	prayer string,
) map[string]string {
	action := actionEnd
	if eventType == entity.BroadcastEventStart {
		action = actionGoLive
	}

	wakeOnSilent := recipient.Device.IsWakeOnSilentEnabled
	if recipient.Subscription != nil && recipient.Subscription.Preferences.WakeOnSilent {
		wakeOnSilent = true
	}

	payload := map[string]string{
		"action":       action,
		"broadcastId":  broadcast.ID.String(),
		"masjidId":     broadcast.MasjidID.String(),
		"prayerName":   prayer,
		"roomName":     broadcast.RoomName,
		"wakeOnSilent": strconv.FormatBool(wakeOnSilent),
	}
	if broadcast.RelayURL != "" {
		payload["relayUrl"] = broadcast.RelayURL
	}
	if broadcast.AudioURL != "" {
		payload["streamUrl"] = broadcast.AudioURL
	}

	if eventType == entity.BroadcastEventStart && broadcast.RelayURL == "" && broadcast.RoomName != "" {
		token, err := s.rooms.MintAccessToken(listenerIdentity(recipient.Device.UserID), broadcast.RoomName, false)
		if err != nil {
			s.log(ctx).Warn("[Notifier] Failed to mint listener token",
				slog.String("broadcast_id", broadcast.ID.String()),
				slog.String("user_id", recipient.Device.UserID.String()),
				slog.Any("error", err),
			)
		} else {
			payload["token"] = token
		}
	}

	return payload
}

// ListDeliveries returns the delivery log of a broadcast to its masjid admin
func (s *notificationService) ListDeliveries(ctx context.Context, actorID, broadcastID uuid.UUID) ([]*entity.NotificationLog, error) {
	broadcast, err := loadBroadcast(ctx, s.broadcastRepo, broadcastID)
	if err != nil {
		return nil, err
	}

	if _, err := ensureMasjidAdmin(ctx, s.masjidRepo, actorID, broadcast.MasjidID); err != nil {
		return nil, err
	}

	logs, err := s.logRepo.FindLogsByBroadcast(ctx, broadcast.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification logs")
	}

	return logs, nil
}

package impl

import (
	"context"
	"testing"
	"time"

	"masjidcast/internal/domain/constants"
	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/service"
	mockRepo "masjidcast/internal/mocks/repository"
	mockSvc "masjidcast/internal/mocks/service"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          *notificationService
	masjidRepo       *mockRepo.MockMasjidRepository
	broadcastRepo    *mockRepo.MockBroadcastRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	logRepo          *mockRepo.MockNotificationLogRepository
	rooms            *mockSvc.MockAudioRoomService
	dataSender       *mockSvc.MockDataMessageSender
	voipSender       *mockSvc.MockVoIPPushSender
}

var notifyNow = time.Date(2025, 3, 9, 23, 40, 5, 0, time.UTC)

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		masjidRepo:       mockRepo.NewMockMasjidRepository(t),
		broadcastRepo:    mockRepo.NewMockBroadcastRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		logRepo:          mockRepo.NewMockNotificationLogRepository(t),
		rooms:            mockSvc.NewMockAudioRoomService(t),
		dataSender:       mockSvc.NewMockDataMessageSender(t),
		voipSender:       mockSvc.NewMockVoIPPushSender(t),
	}

	fx.service = NewNotificationService(NotificationServiceParams{
		Config:           testConfig(),
		MasjidRepo:       fx.masjidRepo,
		BroadcastRepo:    fx.broadcastRepo,
		SubscriptionRepo: fx.subscriptionRepo,
		DeviceRepo:       fx.deviceRepo,
		LogRepo:          fx.logRepo,
		Rooms:            fx.rooms,
		DataSender:       fx.dataSender,
		VoIPSender:       fx.voipSender,
		Logger:           discardLogger(),
	}).(*notificationService)
	fx.service.now = fixedClock(notifyNow)

	return fx
}

func recipient(sub *entity.Subscription, platform entity.Platform, fcm, voip string) *entity.NotificationRecipient {
	return &entity.NotificationRecipient{
		Subscription: sub,
		Device: &entity.UserDevice{
			ID:        uuid.New(),
			UserID:    sub.UserID,
			DeviceID:  "device-" + sub.UserID.String()[:8],
			Platform:  platform,
			FCMToken:  fcm,
			VoIPToken: voip,
			IsActive:  true,
		},
	}
}

func subscriptionFor(masjidID uuid.UUID) *entity.Subscription {
	return &entity.Subscription{ID: uuid.New(), UserID: uuid.New(), MasjidID: masjidID}
}

func startEvent(b *entity.Broadcast) *service.BroadcastEvent {
	return &service.BroadcastEvent{
		BroadcastID: b.ID.String(),
		MasjidID:    b.MasjidID.String(),
		PrayerName:  b.PrayerString(),
		EventType:   string(entity.BroadcastEventStart),
	}
}

func endEvent(b *entity.Broadcast) *service.BroadcastEvent {
	event := startEvent(b)
	event.EventType = string(entity.BroadcastEventEnd)

	return event
}

func captureLogs(fx notificationServiceFixtures, ctx context.Context, into *[]*entity.NotificationLog) {
	fx.logRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.Anything).
		Run(func(_ context.Context, logs []*entity.NotificationLog) { *into = logs }).
		Return(nil).
		Once()
}

func TestNotificationService_Notify_StartRoutesByPlatform(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

	android := recipient(subscriptionFor(broadcast.MasjidID), entity.PlatformAndroid, "fcm-android", "")
	iphone := recipient(subscriptionFor(broadcast.MasjidID), entity.PlatformIOS, "fcm-ios", "voip-ios")
	iphoneNoVoIP := recipient(subscriptionFor(broadcast.MasjidID), entity.PlatformIOS, "fcm-ios-2", "")

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.subscriptionRepo.EXPECT().FindRecipientsByMasjid(ctx, broadcast.MasjidID).
		Return([]*entity.NotificationRecipient{android, iphone, iphoneNoVoIP}, nil)
	fx.rooms.EXPECT().MintAccessToken(mock.Anything, broadcast.RoomName, false).Return("listener-jwt", nil).Times(3)

	fx.dataSender.EXPECT().
		SendDataMessage(ctx, "fcm-android", mock.MatchedBy(func(p map[string]string) bool {
			return p["action"] == "GO_LIVE" &&
				p["broadcastId"] == broadcast.ID.String() &&
				p["prayerName"] == "fajr" &&
				p["roomName"] == broadcast.RoomName &&
				p["token"] == "listener-jwt"
		})).
		Return(service.PushResult{MessageID: "fcm-1"})
	fx.dataSender.EXPECT().SendDataMessage(ctx, "fcm-ios-2", mock.Anything).Return(service.PushResult{MessageID: "fcm-2"})
	fx.voipSender.EXPECT().SendVoIPPush(ctx, "voip-ios", mock.Anything).Return(service.PushResult{MessageID: "apns-1"})

	var logs []*entity.NotificationLog
	captureLogs(fx, ctx, &logs)

	summary, err := fx.service.Notify(ctx, startEvent(broadcast))
	require.NoError(t, err)
	assert.Equal(t, &usecase.FanOutSummary{Recipients: 3, Sent: 3}, summary)

	require.Len(t, logs, 3)
	providers := map[uuid.UUID]string{}
	for _, l := range logs {
		assert.Equal(t, entity.NotificationStatusSent, l.Status)
		assert.Equal(t, entity.BroadcastEventStart, l.EventType)
		providers[l.DeviceID] = l.Provider
	}
	assert.Equal(t, constants.PushProviderFCM, providers[android.Device.ID])
	assert.Equal(t, constants.PushProviderAPNsVoIP, providers[iphone.Device.ID])
	assert.Equal(t, constants.PushProviderFCM, providers[iphoneNoVoIP.Device.ID])
}

func TestNotificationService_Notify_MutedSubscriptionNeverLogged(t *testing.T) {
	for _, eventType := range []entity.BroadcastEventType{entity.BroadcastEventStart, entity.BroadcastEventEnd} {
		t.Run(string(eventType), func(t *testing.T) {
			fx := createTestNotificationService(t)
			ctx := context.Background()
			broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

			muted := subscriptionFor(broadcast.MasjidID)
			muted.IsMuted = true
			until := notifyNow.Add(time.Hour)
			snoozed := subscriptionFor(broadcast.MasjidID)
			snoozed.MuteUntil = &until

			fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
			fx.subscriptionRepo.EXPECT().FindRecipientsByMasjid(ctx, broadcast.MasjidID).Return([]*entity.NotificationRecipient{
				recipient(muted, entity.PlatformAndroid, "fcm-muted", ""),
				recipient(snoozed, entity.PlatformWeb, "fcm-snoozed", ""),
			}, nil)

			event := startEvent(broadcast)
			event.EventType = string(eventType)

			summary, err := fx.service.Notify(ctx, event)
			require.NoError(t, err)
			assert.Equal(t, &usecase.FanOutSummary{Recipients: 2, Skipped: 2}, summary)
		})
	}
}

func TestNotificationService_Notify_ExpiredMuteUntilDelivers(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

	past := notifyNow.Add(-time.Minute)
	sub := subscriptionFor(broadcast.MasjidID)
	sub.MuteUntil = &past

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.subscriptionRepo.EXPECT().FindRecipientsByMasjid(ctx, broadcast.MasjidID).
		Return([]*entity.NotificationRecipient{recipient(sub, entity.PlatformAndroid, "fcm", "")}, nil)
	fx.dataSender.EXPECT().SendDataMessage(ctx, "fcm", mock.Anything).Return(service.PushResult{MessageID: "m"})

	var logs []*entity.NotificationLog
	captureLogs(fx, ctx, &logs)

	summary, err := fx.service.Notify(ctx, endEvent(broadcast))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
}

func TestNotificationService_Notify_MutedPrayerOnlySilencesStart(t *testing.T) {
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))
	sub := subscriptionFor(broadcast.MasjidID)
	sub.Preferences.MutedPrayers = []string{"fajr"}
	r := recipient(sub, entity.PlatformAndroid, "fcm-token", "")

	t.Run("start is skipped", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
		fx.subscriptionRepo.EXPECT().FindRecipientsByMasjid(ctx, broadcast.MasjidID).Return([]*entity.NotificationRecipient{r}, nil)

		summary, err := fx.service.Notify(ctx, startEvent(broadcast))
		require.NoError(t, err)
		assert.Equal(t, &usecase.FanOutSummary{Recipients: 1, Skipped: 1}, summary)
	})

	t.Run("end is delivered", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
		fx.subscriptionRepo.EXPECT().FindRecipientsByMasjid(ctx, broadcast.MasjidID).Return([]*entity.NotificationRecipient{r}, nil)
		fx.dataSender.EXPECT().
			SendDataMessage(ctx, "fcm-token", mock.MatchedBy(func(p map[string]string) bool {
				_, hasToken := p["token"]

				return p["action"] == "END" && !hasToken
			})).
			Return(service.PushResult{MessageID: "m-1"})

		var logs []*entity.NotificationLog
		captureLogs(fx, ctx, &logs)

		summary, err := fx.service.Notify(ctx, endEvent(broadcast))
		require.NoError(t, err)
		assert.Equal(t, &usecase.FanOutSummary{Recipients: 1, Sent: 1}, summary)
		require.Len(t, logs, 1)
		assert.Equal(t, entity.BroadcastEventEnd, logs[0].EventType)
		assert.Equal(t, "m-1", logs[0].MessageID)
	})
}

func TestNotificationService_Notify_RelayedBroadcastSendsURLsWithoutToken(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))
	broadcast.RelayURL = "rtmp://relay.example.com/live/" + broadcast.ID.String()
	broadcast.AudioURL = "https://cdn.example.com/hls/" + broadcast.ID.String() + "/index.m3u8"

	sub := subscriptionFor(broadcast.MasjidID)
	sub.Preferences.WakeOnSilent = true

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.subscriptionRepo.EXPECT().FindRecipientsByMasjid(ctx, broadcast.MasjidID).
		Return([]*entity.NotificationRecipient{recipient(sub, entity.PlatformAndroid, "fcm", "")}, nil)
	fx.dataSender.EXPECT().
		SendDataMessage(ctx, "fcm", mock.MatchedBy(func(p map[string]string) bool {
			_, hasToken := p["token"]

			return !hasToken &&
				p["relayUrl"] == broadcast.RelayURL &&
				p["streamUrl"] == broadcast.AudioURL &&
				p["wakeOnSilent"] == "true"
		})).
		Return(service.PushResult{MessageID: "m"})

	var logs []*entity.NotificationLog
	captureLogs(fx, ctx, &logs)

	_, err := fx.service.Notify(ctx, startEvent(broadcast))
	require.NoError(t, err)
}

func TestNotificationService_Notify_NoRecipients(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.subscriptionRepo.EXPECT().FindRecipientsByMasjid(ctx, broadcast.MasjidID).Return(nil, nil)

	summary, err := fx.service.Notify(ctx, startEvent(broadcast))
	require.NoError(t, err)
	assert.Equal(t, &usecase.FanOutSummary{}, summary)
}

func TestNotificationService_ListDeliveries(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	masjid := kolkataMasjid()
	broadcast := liveBroadcast(masjid, time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))
	logs := []*entity.NotificationLog{{ID: uuid.New(), BroadcastID: broadcast.ID}}

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.logRepo.EXPECT().FindLogsByBroadcast(ctx, broadcast.ID).Return(logs, nil)

	got, err := fx.service.ListDeliveries(ctx, masjid.AdminUserID, broadcast.ID)
	require.NoError(t, err)
	assert.Equal(t, logs, got)
}

func TestNotificationService_Notify_PrayerFallsBackToBroadcast(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

	sub := subscriptionFor(broadcast.MasjidID)
	sub.Preferences.MutedPrayers = []string{"fajr"}

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.subscriptionRepo.EXPECT().FindRecipientsByMasjid(ctx, broadcast.MasjidID).
		Return([]*entity.NotificationRecipient{recipient(sub, entity.PlatformAndroid, "fcm", "")}, nil)

	event := startEvent(broadcast)
	event.PrayerName = ""

	summary, err := fx.service.Notify(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
}

func TestNotificationService_Notify_RecordsFailuresInSingleBatch(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

	ok := recipient(subscriptionFor(broadcast.MasjidID), entity.PlatformAndroid, "fcm-ok", "")
	stale := recipient(subscriptionFor(broadcast.MasjidID), entity.PlatformAndroid, "fcm-stale", "")
	flaky := recipient(subscriptionFor(broadcast.MasjidID), entity.PlatformIOS, "", "voip-flaky")

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.subscriptionRepo.EXPECT().FindRecipientsByMasjid(ctx, broadcast.MasjidID).
		Return([]*entity.NotificationRecipient{ok, stale, flaky}, nil)
	fx.rooms.EXPECT().MintAccessToken(mock.Anything, broadcast.RoomName, false).Return("jwt", nil)
	fx.dataSender.EXPECT().SendDataMessage(ctx, "fcm-ok", mock.Anything).Return(service.PushResult{MessageID: "ok"})
	fx.dataSender.EXPECT().SendDataMessage(ctx, "fcm-stale", mock.Anything).
		Return(service.PushResult{InvalidToken: true, Err: errors.New("registration-token-not-registered")})
	fx.voipSender.EXPECT().SendVoIPPush(ctx, "voip-flaky", mock.Anything).
		Return(service.PushResult{Err: errors.New("apns 503")})
	fx.deviceRepo.EXPECT().DeactivateDevices(ctx, []uuid.UUID{stale.Device.ID}).Return(nil)

	var logs []*entity.NotificationLog
	captureLogs(fx, ctx, &logs)

	summary, err := fx.service.Notify(ctx, startEvent(broadcast))
	require.NoError(t, err)
	assert.Equal(t, &usecase.FanOutSummary{Recipients: 3, Sent: 1, Failed: 2}, summary)

	require.Len(t, logs, 3)
	assert.Equal(t, entity.NotificationStatusSent, logs[0].Status)
	assert.Equal(t, entity.NotificationStatusFailed, logs[1].Status)
	assert.Equal(t, "registration-token-not-registered", logs[1].ErrorMessage)
	assert.Equal(t, entity.NotificationStatusFailed, logs[2].Status)
	assert.Equal(t, constants.PushProviderAPNsVoIP, logs[2].Provider)
}

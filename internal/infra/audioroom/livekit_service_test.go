package audioroom

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"masjidcast/config"
	domainerrors "masjidcast/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/livekit/protocol/livekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twitchtv/twirp"
)

const (
	testAPIKey    = "devkey"
	testAPISecret = "devsecret-devsecret-devsecret-00"
)

type fakeRooms struct {
	created []*livekit.CreateRoomRequest
	deleted []*livekit.DeleteRoomRequest
	err     error
}

func (f *fakeRooms) CreateRoom(_ context.Context, req *livekit.CreateRoomRequest) (*livekit.Room, error) {
	f.created = append(f.created, req)

	return &livekit.Room{Name: req.Name}, f.err
}

func (f *fakeRooms) DeleteRoom(_ context.Context, req *livekit.DeleteRoomRequest) (*livekit.DeleteRoomResponse, error) {
	f.deleted = append(f.deleted, req)

	return &livekit.DeleteRoomResponse{}, f.err
}

type fakeEgress struct {
	started []*livekit.RoomCompositeEgressRequest
	stopped []*livekit.StopEgressRequest
	info    *livekit.EgressInfo
	err     error
}

func (f *fakeEgress) StartRoomCompositeEgress(_ context.Context, req *livekit.RoomCompositeEgressRequest) (*livekit.EgressInfo, error) {
	f.started = append(f.started, req)

	return f.info, f.err
}

func (f *fakeEgress) StopEgress(_ context.Context, req *livekit.StopEgressRequest) (*livekit.EgressInfo, error) {
	f.stopped = append(f.stopped, req)

	return f.info, f.err
}

type liveKitFixtures struct {
	svc    *LiveKitService
	rooms  *fakeRooms
	egress *fakeEgress
}

func createTestLiveKit(t *testing.T) liveKitFixtures {
	t.Helper()

	fx := liveKitFixtures{rooms: &fakeRooms{}, egress: &fakeEgress{info: &livekit.EgressInfo{EgressId: "EG_123"}}}
	fx.svc = &LiveKitService{
		rooms:     fx.rooms,
		egress:    fx.egress,
		apiKey:    testAPIKey,
		apiSecret: testAPISecret,
		tokenTTL:  time.Hour,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return fx
}

func TestLiveKitService_CreateRoom(t *testing.T) {
	fx := createTestLiveKit(t)

	require.NoError(t, fx.svc.CreateRoom(context.Background(), "broadcast-1"))

	require.Len(t, fx.rooms.created, 1)
	assert.Equal(t, "broadcast-1", fx.rooms.created[0].Name)
	assert.EqualValues(t, roomEmptyTimeoutSeconds, fx.rooms.created[0].EmptyTimeout)
}

func TestLiveKitService_CreateRoomAlreadyExists(t *testing.T) {
	fx := createTestLiveKit(t)
	fx.rooms.err = twirp.NewError(twirp.AlreadyExists, "room exists")

	assert.NoError(t, fx.svc.CreateRoom(context.Background(), "broadcast-1"))
}

func TestLiveKitService_CreateRoomProviderError(t *testing.T) {
	fx := createTestLiveKit(t)
	fx.rooms.err = twirp.NewError(twirp.Internal, "boom")

	err := fx.svc.CreateRoom(context.Background(), "broadcast-1")
	require.Error(t, err)
	assert.True(t, domainerrors.IsProviderError(err))
	assert.Equal(t, http.StatusBadGateway, domainerrors.StatusOf(err))
}

func TestLiveKitService_DeleteRoomNotFoundIsIgnored(t *testing.T) {
	fx := createTestLiveKit(t)
	fx.rooms.err = twirp.NotFoundError("room")

	require.NoError(t, fx.svc.DeleteRoom(context.Background(), "broadcast-1"))
	assert.Equal(t, "broadcast-1", fx.rooms.deleted[0].Room)
}

func TestLiveKitService_StartAudioEgress(t *testing.T) {
	fx := createTestLiveKit(t)

	egressID, err := fx.svc.StartAudioEgress(context.Background(), "broadcast-1", "rtmp://relay/live/1", 64)
	require.NoError(t, err)
	assert.Equal(t, "EG_123", egressID)

	req := fx.egress.started[0]
	assert.Equal(t, "broadcast-1", req.RoomName)
	assert.True(t, req.AudioOnly)
	require.Len(t, req.StreamOutputs, 1)
	assert.Equal(t, livekit.StreamProtocol_RTMP, req.StreamOutputs[0].Protocol)
	assert.Equal(t, []string{"rtmp://relay/live/1"}, req.StreamOutputs[0].Urls)
	assert.EqualValues(t, 64, req.GetAdvanced().GetAudioBitrate())
}

func TestLiveKitService_StartAudioEgressWithoutID(t *testing.T) {
	fx := createTestLiveKit(t)
	fx.egress.info = &livekit.EgressInfo{}

	_, err := fx.svc.StartAudioEgress(context.Background(), "broadcast-1", "rtmp://relay/live/1", 64)
	assert.True(t, domainerrors.IsProviderError(err))
}

func TestLiveKitService_StopEgress(t *testing.T) {
	fx := createTestLiveKit(t)

	require.NoError(t, fx.svc.StopEgress(context.Background(), ""))
	assert.Empty(t, fx.egress.stopped)

	require.NoError(t, fx.svc.StopEgress(context.Background(), "EG_123"))
	assert.Equal(t, "EG_123", fx.egress.stopped[0].EgressId)

	fx.egress.err = twirp.NotFoundError("egress")
	assert.NoError(t, fx.svc.StopEgress(context.Background(), "EG_gone"))
}

func TestLiveKitService_UnconfiguredIsConfigurationError(t *testing.T) {
	svc := NewLiveKitService(&config.Config{AudioRoom: &config.AudioRoomConfig{}},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := svc.CreateRoom(context.Background(), "room")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
	assert.False(t, domainerrors.IsProviderError(err))
	assert.Equal(t, http.StatusInternalServerError, domainerrors.StatusOf(err))

	_, err = svc.StartAudioEgress(context.Background(), "room", "rtmp://x", 64)
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)

	_, err = svc.MintAccessToken("user", "room", false)
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}

type roomTokenClaims struct {
	Video struct {
		RoomJoin     bool   `json:"roomJoin"`
		Room         string `json:"room"`
		CanPublish   *bool  `json:"canPublish"`
		CanSubscribe *bool  `json:"canSubscribe"`
	} `json:"video"`
	jwt.RegisteredClaims
}

func TestLiveKitService_MintAccessToken(t *testing.T) {
	fx := createTestLiveKit(t)

	for _, canPublish := range []bool{false, true} {
		token, err := fx.svc.MintAccessToken("listener-1", "broadcast-1", canPublish)
		require.NoError(t, err)

		claims := &roomTokenClaims{}
		_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
			return []byte(testAPISecret), nil
		})
		require.NoError(t, err)

		assert.Equal(t, testAPIKey, claims.Issuer)
		assert.Equal(t, "listener-1", claims.Subject)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
		assert.True(t, claims.Video.RoomJoin)
		assert.Equal(t, "broadcast-1", claims.Video.Room)
		require.NotNil(t, claims.Video.CanPublish)
		assert.Equal(t, canPublish, *claims.Video.CanPublish)
		require.NotNil(t, claims.Video.CanSubscribe)
		assert.True(t, *claims.Video.CanSubscribe)
	}
}

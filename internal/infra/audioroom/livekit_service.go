// Package audioroom manages conferencing rooms on a LiveKit server through its server SDK.
package audioroom

import (
	"context"
	"log/slog"
	"time"

	"masjidcast/config"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/service"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/pkg/errors"
	"github.com/twitchtv/twirp"
)

const (
	providerName = "livekit"

	// Rooms without participants are closed by the server after this many seconds.
	roomEmptyTimeoutSeconds = 10 * 60
)

var errNotConfigured = domainerrors.ErrConfiguration.WithDetails("audioRoom.host, apiKey and apiSecret are required")

// roomClient is the part of lksdk.RoomServiceClient used here.
type roomClient interface {
	CreateRoom(ctx context.Context, req *livekit.CreateRoomRequest) (*livekit.Room, error)
	DeleteRoom(ctx context.Context, req *livekit.DeleteRoomRequest) (*livekit.DeleteRoomResponse, error)
}

// egressClient is the part of lksdk.EgressClient used here.
type egressClient interface {
	StartRoomCompositeEgress(ctx context.Context, req *livekit.RoomCompositeEgressRequest) (*livekit.EgressInfo, error)
	StopEgress(ctx context.Context, req *livekit.StopEgressRequest) (*livekit.EgressInfo, error)
}

// LiveKitService implements service.AudioRoomService
type LiveKitService struct {
	rooms     roomClient
	egress    egressClient
	apiKey    string
	apiSecret string
	tokenTTL  time.Duration
	logger    *slog.Logger
}

// NewLiveKitService builds the SDK clients from the audioRoom config section.
// Without host and credentials every call fails with a configuration error.
func NewLiveKitService(cfg *config.Config, logger *slog.Logger) service.AudioRoomService {
	ac := cfg.AudioRoom
	svc := &LiveKitService{logger: logger}
	if ac == nil || ac.Host == "" || ac.APIKey == "" || ac.APISecret == "" {
		logger.Warn("[AudioRoom] LiveKit is not configured, broadcasts cannot start")

		return svc
	}

	svc.rooms = lksdk.NewRoomServiceClient(ac.Host, ac.APIKey, ac.APISecret)
	svc.egress = lksdk.NewEgressClient(ac.Host, ac.APIKey, ac.APISecret)
	svc.apiKey = ac.APIKey
	svc.apiSecret = ac.APISecret
	svc.tokenTTL = ac.TokenTTL

	return svc
}

func (s *LiveKitService) configured() bool {
	return s.rooms != nil && s.egress != nil && s.apiKey != "" && s.apiSecret != ""
}

// CreateRoom is idempotent: an existing room is not an error.
func (s *LiveKitService) CreateRoom(ctx context.Context, room string) error {
	if !s.configured() {
		return errNotConfigured
	}

	_, err := s.rooms.CreateRoom(ctx, &livekit.CreateRoomRequest{
		Name:         room,
		EmptyTimeout: roomEmptyTimeoutSeconds,
	})
	if err != nil && !hasTwirpCode(err, twirp.AlreadyExists) {
		return domainerrors.NewProviderError(providerName, errors.Wrapf(err, "create room %s", room))
	}

	s.logger.InfoContext(ctx, "[AudioRoom] Room ready", slog.String("room", room))

	return nil
}

// DeleteRoom closes room. A missing room is not an error.
func (s *LiveKitService) DeleteRoom(ctx context.Context, room string) error {
	if !s.configured() {
		return errNotConfigured
	}

	if _, err := s.rooms.DeleteRoom(ctx, &livekit.DeleteRoomRequest{Room: room}); err != nil {
		if hasTwirpCode(err, twirp.NotFound) {
			return nil
		}

		return domainerrors.NewProviderError(providerName, errors.Wrapf(err, "delete room %s", room))
	}

	s.logger.InfoContext(ctx, "[AudioRoom] Room deleted", slog.String("room", room))

	return nil
}

// StartAudioEgress streams the mixed audio of room to an RTMP url
func (s *LiveKitService) StartAudioEgress(ctx context.Context, room, url string, bitrateKbps int) (string, error) {
	if !s.configured() {
		return "", errNotConfigured
	}

	info, err := s.egress.StartRoomCompositeEgress(ctx, &livekit.RoomCompositeEgressRequest{
		RoomName:  room,
		AudioOnly: true,
		StreamOutputs: []*livekit.StreamOutput{{
			Protocol: livekit.StreamProtocol_RTMP,
			Urls:     []string{url},
		}},
		Options: &livekit.RoomCompositeEgressRequest_Advanced{
			Advanced: &livekit.EncodingOptions{
				AudioCodec:   livekit.AudioCodec_AAC,
				AudioBitrate: int32(bitrateKbps),
			},
		},
	})
	if err != nil {
		return "", domainerrors.NewProviderError(providerName, errors.Wrapf(err, "start egress for %s", room))
	}
	if info.GetEgressId() == "" {
		return "", domainerrors.NewProviderError(providerName, errors.New("egress started without an id"))
	}

	return info.GetEgressId(), nil
}

// StopEgress stops a running egress. An egress the server no longer knows is already stopped.
func (s *LiveKitService) StopEgress(ctx context.Context, egressID string) error {
	if egressID == "" {
		return nil
	}
	if !s.configured() {
		return errNotConfigured
	}

	if _, err := s.egress.StopEgress(ctx, &livekit.StopEgressRequest{EgressId: egressID}); err != nil {
		if hasTwirpCode(err, twirp.NotFound) {
			return nil
		}

		return domainerrors.NewProviderError(providerName, errors.Wrapf(err, "stop egress %s", egressID))
	}

	return nil
}

// MintAccessToken returns a join token for identity. Listeners can subscribe but never publish.
func (s *LiveKitService) MintAccessToken(identity, room string, canPublish bool) (string, error) {
	if identity == "" || room == "" {
		return "", errors.New("identity and room are required")
	}
	if s.apiKey == "" || s.apiSecret == "" {
		return "", errNotConfigured
	}

	grant := &auth.VideoGrant{RoomJoin: true, Room: room}
	grant.SetCanPublish(canPublish)
	grant.SetCanPublishData(canPublish)
	grant.SetCanSubscribe(true)

	token, err := auth.NewAccessToken(s.apiKey, s.apiSecret).
		SetVideoGrant(grant).
		SetIdentity(identity).
		SetValidFor(s.tokenTTL).
		ToJWT()
	if err != nil {
		return "", errors.Wrap(err, "sign room token")
	}

	return token, nil
}

func hasTwirpCode(err error, code twirp.ErrorCode) bool {
	var twErr twirp.Error

	return errors.As(err, &twErr) && twErr.Code() == code
}

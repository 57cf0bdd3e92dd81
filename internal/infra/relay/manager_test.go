package relay

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"testing"
	"time"

	"masjidcast/config"
	domainerrors "masjidcast/internal/domain/errors"
	mockService "masjidcast/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess stands in for the transcoder.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("RELAY_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("RELAY_HELPER_MODE") {
	case "crash":
		os.Exit(3)
	default:
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		select {
		case <-sig:
		case <-time.After(time.Minute):
		}
		os.Exit(0)
	}
}

func helperCommand(mode string, jobs chan<- transcodeJob) CommandFunc {
	return func(ctx context.Context, job transcodeJob) *exec.Cmd {
		if jobs != nil {
			jobs <- job
		}
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "RELAY_HELPER_PROCESS=1", "RELAY_HELPER_MODE="+mode)

		return cmd
	}
}

type managerFixture struct {
	manager *Manager
	rooms   *mockService.MockAudioRoomService
	cfg     *config.RelayConfig
}

func createTestManager(t *testing.T, command CommandFunc) *managerFixture {
	t.Helper()

	cfg := &config.RelayConfig{
		Enabled:            true,
		PublishURLTemplate: "rtmp://relay:1935/live/{broadcastId}",
		PlayURLTemplate:    "rtmp://localhost:1935/live/{broadcastId}",
		PublicURLTemplate:  "https://cdn.example.com/{broadcastId}/index.m3u8?room={roomName}",
		BitrateKbps:        64,
		OutputDir:          t.TempDir(),
		SegmentSeconds:     4,
		PlaylistSize:       6,
	}
	rooms := mockService.NewMockAudioRoomService(t)
	m := newManager(cfg, rooms, slog.New(slog.NewTextHandler(io.Discard, nil)), command)
	m.stopTimeout = 5 * time.Second

	return &managerFixture{manager: m, rooms: rooms, cfg: cfg}
}

func TestManager_StartAndStopRelay(t *testing.T) {
	jobs := make(chan transcodeJob, 1)
	fx := createTestManager(t, helperCommand("sleep", jobs))
	id := uuid.New()

	fx.rooms.EXPECT().StartAudioEgress(mock.Anything, "broadcast-x", "rtmp://relay:1935/live/"+id.String(), 64).
		Return("EG_1", nil).Once()

	out, err := fx.manager.StartRelay(context.Background(), id, "broadcast-x")
	require.NoError(t, err)
	assert.Equal(t, "EG_1", out.EgressID)
	assert.Equal(t, "rtmp://relay:1935/live/"+id.String(), out.RelayURL)
	assert.Equal(t, "https://cdn.example.com/"+id.String()+"/index.m3u8?room=broadcast-x", out.PlaybackURL)
	assert.True(t, fx.manager.IsRunning(id))

	job := <-jobs
	assert.Equal(t, "rtmp://localhost:1935/live/"+id.String(), job.PlayURL)
	assert.Equal(t, filepath.Join(fx.cfg.OutputDir, id.String()), job.OutputDir)
	assert.DirExists(t, job.OutputDir)

	fx.rooms.EXPECT().StopEgress(mock.Anything, "EG_1").Return(nil).Once()

	require.NoError(t, fx.manager.StopRelay(context.Background(), id))
	assert.False(t, fx.manager.IsRunning(id))
}

func TestManager_StartRelayTwiceConflicts(t *testing.T) {
	fx := createTestManager(t, helperCommand("sleep", nil))
	id := uuid.New()

	fx.rooms.EXPECT().StartAudioEgress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("EG_1", nil).Once()
	fx.rooms.EXPECT().StopEgress(mock.Anything, "EG_1").Return(nil).Once()

	_, err := fx.manager.StartRelay(context.Background(), id, "room")
	require.NoError(t, err)

	_, err = fx.manager.StartRelay(context.Background(), id, "room")
	assert.ErrorIs(t, err, domainerrors.ErrRelayAlreadyRunning)

	fx.manager.StopAll(context.Background())
	assert.False(t, fx.manager.IsRunning(id))
}

func TestManager_StopRelayUnknownIsNoop(t *testing.T) {
	fx := createTestManager(t, helperCommand("sleep", nil))

	assert.NoError(t, fx.manager.StopRelay(context.Background(), uuid.New()))
}

func TestManager_StartRelayDisabled(t *testing.T) {
	fx := createTestManager(t, helperCommand("sleep", nil))
	fx.cfg.Enabled = false

	_, err := fx.manager.StartRelay(context.Background(), uuid.New(), "room")
	assert.ErrorIs(t, err, domainerrors.ErrRelayDisabled)
}

func TestManager_StartRelayMissingTemplates(t *testing.T) {
	fx := createTestManager(t, helperCommand("sleep", nil))
	fx.cfg.PublishURLTemplate = ""

	_, err := fx.manager.StartRelay(context.Background(), uuid.New(), "room")
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}

func TestManager_EgressFailureLeavesNothingRunning(t *testing.T) {
	fx := createTestManager(t, helperCommand("sleep", nil))
	id := uuid.New()

	providerErr := domainerrors.NewProviderError("livekit", assert.AnError)
	fx.rooms.EXPECT().StartAudioEgress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", providerErr).Once()

	_, err := fx.manager.StartRelay(context.Background(), id, "room")
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, fx.manager.IsRunning(id))
}

func TestManager_SpawnFailureStopsEgress(t *testing.T) {
	fx := createTestManager(t, func(ctx context.Context, _ transcodeJob) *exec.Cmd {
		return exec.CommandContext(ctx, filepath.Join(t.TempDir(), "missing-ffmpeg"))
	})
	id := uuid.New()

	fx.rooms.EXPECT().StartAudioEgress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("EG_2", nil).Once()
	fx.rooms.EXPECT().StopEgress(mock.Anything, "EG_2").Return(nil).Once()

	_, err := fx.manager.StartRelay(context.Background(), id, "room")
	require.Error(t, err)
	assert.False(t, fx.manager.IsRunning(id))

	// The slot is free again
	fx.rooms.EXPECT().StartAudioEgress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError).Once()
	_, err = fx.manager.StartRelay(context.Background(), id, "room")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestManager_UnexpectedExitRemovesEntry(t *testing.T) {
	fx := createTestManager(t, helperCommand("crash", nil))
	id := uuid.New()

	fx.rooms.EXPECT().StartAudioEgress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("EG_3", nil).Once()
	// The crash may be observed before StartRelay returns
	fx.rooms.EXPECT().StopEgress(mock.Anything, "EG_3").Return(nil).Maybe()

	_, _ = fx.manager.StartRelay(context.Background(), id, "room")

	assert.Eventually(t, func() bool {
		return !fx.manager.IsRunning(id)
	}, 5*time.Second, 10*time.Millisecond)

	assert.NoError(t, fx.manager.StopRelay(context.Background(), id))
}

func TestNewCommandFunc(t *testing.T) {
	cfg := &config.RelayConfig{
		ExecMode:         "native",
		FFmpegPath:       "/usr/bin/ffmpeg",
		ContainerRuntime: "docker",
		ContainerImage:   "jrottenberg/ffmpeg:6-alpine",
		BitrateKbps:      96,
		SegmentSeconds:   4,
		PlaylistSize:     6,
	}
	job := transcodeJob{Name: "masjidcast-relay-1", PlayURL: "rtmp://in/1", OutputDir: "/srv/hls/1"}

	native := newCommandFunc(cfg)(context.Background(), job)
	assert.Equal(t, "/usr/bin/ffmpeg", native.Path)
	assert.Contains(t, native.Args, "96k")
	assert.Equal(t, "/srv/hls/1/index.m3u8", native.Args[len(native.Args)-1])

	cfg.ExecMode = "container"
	container := newCommandFunc(cfg)(context.Background(), job)
	assert.Equal(t, "docker", filepath.Base(container.Args[0]))
	assert.Equal(t, []string{"run", "--rm", "--name", "masjidcast-relay-1", "-v", "/srv/hls:/out", "jrottenberg/ffmpeg:6-alpine"},
		container.Args[1:8])
	assert.Equal(t, "/out/1/index.m3u8", container.Args[len(container.Args)-1])
}

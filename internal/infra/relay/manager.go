// Package relay runs one HLS transcoder per live broadcast.
package relay

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"masjidcast/config"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/lifecycle"
	"masjidcast/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	stopGracePeriod = 5 * time.Second
	stderrTailSize  = 2048
)

// relayHandle is one entry of the relay table. done is closed once the
// transcoder has exited or failed to start.
type relayHandle struct {
	roomName string
	egressID string
	started  bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// Manager owns the relay table of this process.
type Manager struct {
	cfg     *config.RelayConfig
	rooms   service.AudioRoomService
	logger  *slog.Logger
	command CommandFunc

	stopTimeout time.Duration

	mu     sync.Mutex
	relays map[uuid.UUID]*relayHandle
}

// Params holds dependencies for the relay manager
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Rooms  service.AudioRoomService
	Logger *slog.Logger
}

// NewRelayManager creates the relay manager and stops every relay on shutdown
func NewRelayManager(params Params) service.RelayManager {
	m := newManager(params.Config.Relay, params.Rooms, params.Logger, newCommandFunc(params.Config.Relay))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			m.StopAll(ctx)

			return nil
		},
	})

	return m
}

func newManager(cfg *config.RelayConfig, rooms service.AudioRoomService, logger *slog.Logger, command CommandFunc) *Manager {
	return &Manager{
		cfg:         cfg,
		rooms:       rooms,
		logger:      logger,
		command:     command,
		stopTimeout: lifecycle.DefaultTimeout,
		relays:      make(map[uuid.UUID]*relayHandle),
	}
}

type relayURLs struct {
	publish string
	play    string
	public  string
}

func (m *Manager) renderURLs(broadcastID uuid.UUID, roomName string) relayURLs {
	r := strings.NewReplacer("{broadcastId}", broadcastID.String(), "{roomName}", roomName)

	return relayURLs{
		publish: r.Replace(m.cfg.PublishURLTemplate),
		play:    r.Replace(m.cfg.PlayURLTemplate),
		public:  r.Replace(m.cfg.PublicURLTemplate),
	}
}

// StartRelay starts the provider egress and the transcoder of a broadcast.
func (m *Manager) StartRelay(ctx context.Context, broadcastID uuid.UUID, roomName string) (*service.RelayOutput, error) {
	if !m.cfg.Enabled {
		return nil, domainerrors.ErrRelayDisabled
	}
	if m.cfg.PublishURLTemplate == "" || m.cfg.PlayURLTemplate == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("relay URL templates are required")
	}

	h := &relayHandle{roomName: roomName, done: make(chan struct{})}

	m.mu.Lock()
	if _, exists := m.relays[broadcastID]; exists {
		m.mu.Unlock()

		return nil, domainerrors.ErrRelayAlreadyRunning.WithDetails(broadcastID.String())
	}
	m.relays[broadcastID] = h
	m.mu.Unlock()

	urls := m.renderURLs(broadcastID, roomName)

	if err := m.launch(ctx, broadcastID, h, urls); err != nil {
		m.remove(broadcastID, h)
		close(h.done)

		return nil, err
	}

	m.mu.Lock()
	current := m.relays[broadcastID] == h
	if current {
		h.started = true
	}
	m.mu.Unlock()

	// Stopped or exited while starting
	if !current {
		m.teardown(ctx, broadcastID, h)

		return nil, domainerrors.ErrConflict.WithDetails("relay stopped while starting")
	}

	m.logger.InfoContext(ctx, "[Relay] Relay started",
		slog.String("broadcast_id", broadcastID.String()),
		slog.String("egress_id", h.egressID),
		slog.String("playback_url", urls.public),
	)

	return &service.RelayOutput{
		PlaybackURL: urls.public,
		EgressID:    h.egressID,
		RelayURL:    urls.publish,
	}, nil
}

// launch starts egress then the transcoder. On failure nothing is left running.
func (m *Manager) launch(ctx context.Context, broadcastID uuid.UUID, h *relayHandle, urls relayURLs) error {
	outputDir := filepath.Join(m.cfg.OutputDir, broadcastID.String())
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrap(err, "create relay output directory")
	}

	egressID, err := m.rooms.StartAudioEgress(ctx, h.roomName, urls.publish, m.cfg.BitrateKbps)
	if err != nil {
		return err
	}
	h.egressID = egressID

	procCtx, cancel := context.WithCancel(context.Background())
	cmd := m.command(procCtx, transcodeJob{
		Name:      "masjidcast-relay-" + broadcastID.String(),
		PlayURL:   urls.play,
		OutputDir: outputDir,
	})
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = stopGracePeriod
	stderr := &tailBuffer{limit: stderrTailSize}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		cancel()
		m.stopEgress(ctx, broadcastID, egressID)

		return errors.Wrapf(err, "start transcoder %s", cmd.Path)
	}
	h.cancel = cancel

	go m.watch(broadcastID, h, cmd, procCtx, stderr)

	return nil
}

// watch waits for the transcoder and drops the table entry if it still belongs to h.
func (m *Manager) watch(broadcastID uuid.UUID, h *relayHandle, cmd *exec.Cmd, procCtx context.Context, stderr *tailBuffer) {
	err := cmd.Wait()
	stopped := procCtx.Err() != nil

	m.remove(broadcastID, h)
	close(h.done)

	if stopped {
		m.logger.Debug("[Relay] Transcoder stopped", slog.String("broadcast_id", broadcastID.String()))

		return
	}

	m.logger.Error("[Relay] Transcoder exited unexpectedly",
		slog.String("broadcast_id", broadcastID.String()),
		slog.Any("error", err),
		slog.String("stderr", stderr.String()),
	)
}

func (m *Manager) remove(broadcastID uuid.UUID, h *relayHandle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.relays[broadcastID] == h {
		delete(m.relays, broadcastID)
	}
}

// StopRelay stops the transcoder and the egress of a broadcast. Unknown IDs are ignored.
func (m *Manager) StopRelay(ctx context.Context, broadcastID uuid.UUID) error {
	m.mu.Lock()
	h, ok := m.relays[broadcastID]
	if ok {
		delete(m.relays, broadcastID)
	}
	started := ok && h.started
	m.mu.Unlock()

	if !ok {
		return nil
	}
	// StartRelay notices the missing entry and tears down on its own
	if !started {
		return nil
	}

	return m.teardown(ctx, broadcastID, h)
}

func (m *Manager) teardown(ctx context.Context, broadcastID uuid.UUID, h *relayHandle) error {
	if h.cancel != nil {
		h.cancel()
	}

	timer := time.NewTimer(m.stopTimeout)
	defer timer.Stop()

	select {
	case <-h.done:
	case <-timer.C:
		m.logger.WarnContext(ctx, "[Relay] Transcoder did not exit in time", slog.String("broadcast_id", broadcastID.String()))
	case <-ctx.Done():
	}

	if h.egressID == "" {
		return nil
	}
	if err := m.rooms.StopEgress(ctx, h.egressID); err != nil {
		return err
	}

	m.logger.InfoContext(ctx, "[Relay] Relay stopped", slog.String("broadcast_id", broadcastID.String()))

	return nil
}

func (m *Manager) stopEgress(ctx context.Context, broadcastID uuid.UUID, egressID string) {
	if err := m.rooms.StopEgress(ctx, egressID); err != nil {
		m.logger.WarnContext(ctx, "[Relay] Failed to stop egress",
			slog.String("broadcast_id", broadcastID.String()),
			slog.String("egress_id", egressID),
			slog.Any("error", err),
		)
	}
}

// IsRunning reports whether a relay is registered for the broadcast.
func (m *Manager) IsRunning(broadcastID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.relays[broadcastID]

	return ok
}

// StopAll stops every relay of this process.
func (m *Manager) StopAll(ctx context.Context) {
	m.mu.Lock()
	ids := make([]uuid.UUID, 0, len(m.relays))
	for id := range m.relays {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		if err := m.StopRelay(ctx, id); err != nil {
			m.logger.WarnContext(ctx, "[Relay] Failed to stop relay on shutdown",
				slog.String("broadcast_id", id.String()),
				slog.Any("error", err),
			)
		}
	}
}

// tailBuffer keeps the last bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   bytes.Buffer
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf.Write(p)
	if extra := t.buf.Len() - t.limit; extra > 0 {
		t.buf.Next(extra)
	}

	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.buf.String()
}

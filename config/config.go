package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultPrepWindow        = 2 * time.Minute
	defaultSchedulerInterval = 60 * time.Second
	defaultMaxDuration       = 15 * time.Minute
	defaultSweepInterval     = 5 * time.Minute
	defaultStreamProvider    = "livekit"
	defaultRoomTokenTTL      = 6 * time.Hour

	defaultRelayBitrateKbps  = 64
	defaultRelayOutputDir    = "./data/hls"
	defaultRelayExecMode     = "native"
	defaultFFmpegPath        = "ffmpeg"
	defaultContainerRuntime  = "docker"
	defaultContainerImage    = "jrottenberg/ffmpeg:6-alpine"
	defaultSegmentSeconds    = 4
	defaultPlaylistSize      = 6
	defaultHLSURLTTL         = time.Hour
	defaultQueueConcurrency  = 10
	defaultNotifierRate      = 50
	defaultRedisURL          = "redis://localhost:6379/0"
	defaultHLSBasePath       = "/api/v1"
	defaultQRCodeSize        = 256
	defaultQRCodeCorrection  = "M"
	defaultServiceName       = "masjidcast"
	defaultPubSubProvider    = "queue"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowedOrigins enables credentialed CORS for browser players. Empty allows any origin without cookies.
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Queue *QueueConfig `json:"queue" yaml:"queue"`

	// SecretKey.Access validates bearer tokens issued by the account service
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Broadcast *BroadcastConfig `json:"broadcast" yaml:"broadcast"`

	AudioRoom *AudioRoomConfig `json:"audioRoom" yaml:"audioRoom"`

	Relay *RelayConfig `json:"relay" yaml:"relay"`

	HLS *HLSConfig `json:"hls" yaml:"hls"`

	// Firebase configuration for data-message pushes
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// APNs configuration for VoIP pushes
	APNs *APNsConfig `json:"apns" yaml:"apns"`

	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	// PubSub selects how broadcast events reach the fan-out engine
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for masjid follow codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// TestRoutes enables diagnostic endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig points asynq at its backing store.
type RedisConfig struct {
	URL string `json:"url" yaml:"url"`
}

// QueueConfig tunes the job server.
type QueueConfig struct {
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// BroadcastConfig controls scheduling and lifecycle timing.
type BroadcastConfig struct {
	// Look-ahead window used by the planner
	PrepWindow time.Duration `json:"prepWindow" yaml:"prepWindow"`

	// Tick interval shared by the expander and the planner
	SchedulerInterval time.Duration `json:"schedulerInterval" yaml:"schedulerInterval"`

	// Ceiling after which a live broadcast is ended automatically
	MaxDuration time.Duration `json:"maxDuration" yaml:"maxDuration"`

	// Interval of the stale-live sweep
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	// Provider tag stored on new broadcasts
	StreamProvider string `json:"streamProvider" yaml:"streamProvider"`
}

// AudioRoomConfig defines the LiveKit-compatible conferencing server.
type AudioRoomConfig struct {
	Host      string        `json:"host" yaml:"host"`
	APIKey    string        `json:"apiKey" yaml:"apiKey"`
	APISecret string        `json:"apiSecret" yaml:"apiSecret"`
	TokenTTL  time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// RelayConfig defines the HLS relay pipeline.
type RelayConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Target of the provider egress, e.g. rtmp://relay:1935/live/{broadcastId}
	PublishURLTemplate string `json:"publishUrlTemplate" yaml:"publishUrlTemplate"`

	// Source read by the transcoder, usually the same stream as seen from the worker
	PlayURLTemplate string `json:"playUrlTemplate" yaml:"playUrlTemplate"`

	// Listener-facing playlist URL stored on the broadcast
	PublicURLTemplate string `json:"publicUrlTemplate" yaml:"publicUrlTemplate"`

	BitrateKbps int    `json:"bitrateKbps" yaml:"bitrateKbps"`
	OutputDir   string `json:"outputDir" yaml:"outputDir"`

	// native runs ffmpeg directly, container runs it through the container runtime
	ExecMode         string `json:"execMode" yaml:"execMode"`
	FFmpegPath       string `json:"ffmpegPath" yaml:"ffmpegPath"`
	ContainerRuntime string `json:"containerRuntime" yaml:"containerRuntime"`
	ContainerImage   string `json:"containerImage" yaml:"containerImage"`

	SegmentSeconds int `json:"segmentSeconds" yaml:"segmentSeconds"`
	PlaylistSize   int `json:"playlistSize" yaml:"playlistSize"`
}

// HLSConfig defines signed playback access.
type HLSConfig struct {
	BasePath      string        `json:"basePath" yaml:"basePath"`
	SigningSecret string        `json:"signingSecret" yaml:"signingSecret"`
	URLTTL        time.Duration `json:"urlTTL" yaml:"urlTTL"`

	// gocloud.dev bucket URL the relay output is read from (file:// or gs://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// APNsConfig defines token-based APNs authentication for VoIP pushes.
type APNsConfig struct {
	KeyPath    string `json:"keyPath" yaml:"keyPath"`
	KeyID      string `json:"keyId" yaml:"keyId"`
	TeamID     string `json:"teamId" yaml:"teamId"`
	BundleID   string `json:"bundleId" yaml:"bundleId"`
	Production bool   `json:"production" yaml:"production"`
}

// NotifierConfig throttles outbound pushes.
type NotifierConfig struct {
	RatePerSecond int `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int `json:"burst" yaml:"burst"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "queue" (asynq), "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env vars override file values. BROADCAST_MAXDURATION -> broadcast.maxDuration
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never nil-check them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = defaultServiceName
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.URL == "" {
		cfg.Redis.URL = defaultRedisURL
	}

	if cfg.Queue == nil {
		cfg.Queue = &QueueConfig{}
	}
	if cfg.Queue.Concurrency <= 0 {
		cfg.Queue.Concurrency = defaultQueueConcurrency
	}

	if cfg.Broadcast == nil {
		cfg.Broadcast = &BroadcastConfig{}
	}
	b := cfg.Broadcast
	b.PrepWindow = durationOr(b.PrepWindow, defaultPrepWindow)
	b.SchedulerInterval = durationOr(b.SchedulerInterval, defaultSchedulerInterval)
	b.MaxDuration = durationOr(b.MaxDuration, defaultMaxDuration)
	b.SweepInterval = durationOr(b.SweepInterval, defaultSweepInterval)
	if b.StreamProvider == "" {
		b.StreamProvider = defaultStreamProvider
	}

	if cfg.AudioRoom == nil {
		cfg.AudioRoom = &AudioRoomConfig{}
	}
	cfg.AudioRoom.TokenTTL = durationOr(cfg.AudioRoom.TokenTTL, defaultRoomTokenTTL)

	if cfg.Relay == nil {
		cfg.Relay = &RelayConfig{}
	}
	r := cfg.Relay
	if r.BitrateKbps <= 0 {
		r.BitrateKbps = defaultRelayBitrateKbps
	}
	if r.OutputDir == "" {
		r.OutputDir = defaultRelayOutputDir
	}
	if r.ExecMode == "" {
		r.ExecMode = defaultRelayExecMode
	}
	if r.FFmpegPath == "" {
		r.FFmpegPath = defaultFFmpegPath
	}
	if r.ContainerRuntime == "" {
		r.ContainerRuntime = defaultContainerRuntime
	}
	if r.ContainerImage == "" {
		r.ContainerImage = defaultContainerImage
	}
	if r.SegmentSeconds <= 0 {
		r.SegmentSeconds = defaultSegmentSeconds
	}
	if r.PlaylistSize <= 0 {
		r.PlaylistSize = defaultPlaylistSize
	}

	if cfg.HLS == nil {
		cfg.HLS = &HLSConfig{}
	}
	if cfg.HLS.BasePath == "" {
		cfg.HLS.BasePath = defaultHLSBasePath
	}
	cfg.HLS.URLTTL = durationOr(cfg.HLS.URLTTL, defaultHLSURLTTL)
	if cfg.HLS.BucketURL == "" {
		cfg.HLS.BucketURL = "file://" + filepath.ToSlash(r.OutputDir) + "?create_dir=true"
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	if cfg.Notifier.RatePerSecond <= 0 {
		cfg.Notifier.RatePerSecond = defaultNotifierRate
	}
	if cfg.Notifier.Burst <= 0 {
		cfg.Notifier.Burst = cfg.Notifier.RatePerSecond
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.Provider == "" {
		cfg.PubSub.Provider = defaultPubSubProvider
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeCorrection
	}
}

func durationOr(v, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}

	return v
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

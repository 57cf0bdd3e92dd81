// Package constants holds identifiers shared across layers.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Notification event transports.
const (
	PubSubProviderQueue  = "queue"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Relay execution modes.
const (
	RelayExecModeNative    = "native"
	RelayExecModeContainer = "container"
)

// Job queue names. Weights are assigned by the jobs server.
const (
	QueueBroadcasts    = "broadcasts"
	QueueNotifications = "notifications"
	QueueRelay         = "relay"
)

// Job names routed by the jobs server.
const (
	JobBroadcastAutoEnd = "broadcast:auto_end"
	JobBroadcastNotify  = "broadcast:notify"
	JobRelayStart       = "relay:start"
	JobRelayStop        = "relay:stop"
)

// Push providers recorded in notification logs.
const (
	PushProviderFCM      = "fcm"
	PushProviderAPNsVoIP = "apns_voip"
)

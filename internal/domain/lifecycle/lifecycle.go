// Package lifecycle defines shared lifecycle timing values.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second

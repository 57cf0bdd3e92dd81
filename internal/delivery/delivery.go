// Package delivery defines the contract for long-running inbound adapters.
package delivery

import "context"

// Delivery is a server-like component started by the fx entrypoints.
// Serve blocks until the component stops.
type Delivery interface {
	Serve(ctx context.Context) error
}

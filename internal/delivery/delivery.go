// Package delivery defines the transport-agnostic contract every server
// implementation satisfies, so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a running transport surface (HTTP today).
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}

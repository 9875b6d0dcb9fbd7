// Package delivery defines the contract every transport-facing server
// implements so the application entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server owned by the application lifecycle.
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}

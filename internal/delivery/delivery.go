// Package delivery defines the common interface every serving surface
// (HTTP API, push worker) implements so cmd binaries can start them uniformly.
package delivery

import "context"

// Delivery is a long-running serving surface started by the cmd layer.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}

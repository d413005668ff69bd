// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as DB pings and graceful
// server shutdown.
const DefaultTimeout = 15 * time.Second

// Package lifecycle holds shared startup/shutdown policy for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown drains.
const DefaultTimeout = 10 * time.Second

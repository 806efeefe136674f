// Package lifecycle defines timeouts shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks and graceful shutdowns.
const DefaultTimeout = 15 * time.Second

// Package delivery holds the long-running surfaces of the binaries.
package delivery

import "context"

// Delivery is a surface that serves until its context ends or it fails.
type Delivery interface {
	Serve(ctx context.Context) error
}

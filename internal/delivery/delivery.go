// Package delivery defines the transport-facing entry points of the
// application.
package delivery

import "context"

// Delivery is one serving surface (HTTP today), started by the
// application container.
type Delivery interface {
	Serve(ctx context.Context) error
}

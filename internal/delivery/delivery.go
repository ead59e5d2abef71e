// Package delivery defines the transports the service exposes.
package delivery

import "context"

// Delivery is a long-running transport started by the fx graph.
type Delivery interface {
	Serve(ctx context.Context) error
}

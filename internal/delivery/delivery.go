// Package delivery defines the servers that expose the application.
package delivery

import "context"

// Delivery is a server run by the application until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport entry point
// (HTTP server, workers) satisfies so main can run them uniformly.
package delivery

import "context"

// Delivery is a long-running serving loop. Serve blocks until the server
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport entry point
// implements. Servers are collected into the "deliveries" fx group and run
// concurrently by the main goroutine.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP today).
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}

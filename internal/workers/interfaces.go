// Package workers runs the background maintenance tasks of the
// configuration service.
// It defines the Worker interface and a Workers aggregate that starts every
// configured worker and waits for them to stop.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is canceled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

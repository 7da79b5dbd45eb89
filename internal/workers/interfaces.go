// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the server.
// It defines the Worker interface and a Workers aggregate that starts
// several workers together and waits for all of them to stop.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is
// cancelled and the worker has finished its remaining work.
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

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT is received and every server has shut down.
	RunServer()

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown()
}

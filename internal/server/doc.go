// Package server runs the loopback HTTP API together with the background
// workers, handling startup, signal handling, and graceful shutdown.
package server

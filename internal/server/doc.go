// Package server runs the HTTP transport and handles signal-driven graceful
// shutdown.
package server

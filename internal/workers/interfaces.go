// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running and stopping multiple workers in a unified way, and a bounded
// goroutine Pool used for CPU-heavy jobs such as password hashing.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to return promptly and spawn goroutines
// internally.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that hold goroutines which must be
// released on shutdown.
type Stopper interface {
	Stop()
}

package workers

// Workers runs a fixed set of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws in start order.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker implementing Stopper, in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stopper); ok {
			s.Stop()
		}
	}
}

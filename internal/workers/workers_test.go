// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
)

// mockWorker is a test implementation of the Worker and Stopper interfaces
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

// runOnlyWorker does not implement Stopper.
type runOnlyWorker struct {
	runCount int
}

func (r *runOnlyWorker) Run() {
	r.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Stop_OnlyStoppers(t *testing.T) {
	stoppable := &mockWorker{}
	plain := &runOnlyWorker{}

	ws := NewWorkers(stoppable, plain)
	ws.Run()
	ws.Stop()

	if stoppable.stopCount != 1 {
		t.Errorf("expected stopCount=1, got %d", stoppable.stopCount)
	}
	if plain.runCount != 1 {
		t.Errorf("expected runCount=1, got %d", plain.runCount)
	}
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
	)
	ws.Stop()

	if len(order) != 2 || order[0] != -2 || order[1] != -1 {
		t.Errorf("expected stop order [-2 -1], got %v", order)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run
// and its negated ID on Stop.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, -o.id)
}

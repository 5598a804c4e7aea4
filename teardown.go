package dockside

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// teardownStack tracks cleanup steps for a terminal session and runs them in
// LIFO order, so the last resource acquired is the first released.
type teardownStack struct {
	mu    sync.Mutex
	steps []teardownStep
}

type teardownStep struct {
	name string
	fn   func() error
}

// add registers a cleanup step. Steps run in reverse registration order.
func (s *teardownStack) add(name string, fn func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append([]teardownStep{{name, fn}}, s.steps...)
}

// run executes every registered step, logging failures instead of stopping.
// A second run is a no-op.
func (s *teardownStack) run() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, step := range s.steps {
		if err := step.fn(); err != nil {
			logrus.Warnf("teardown failed for %s: %v", step.name, err)
		}
	}
	s.steps = nil
}

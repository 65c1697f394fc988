package engine

import "sync"

// StepScheduler is a FrameScheduler that runs frames only when told to. Tests use it to
// advance an animation a known number of frames without a window.
type StepScheduler struct {
	mu      sync.Mutex
	pending []func()
	frames  int
}

var _ FrameScheduler = &StepScheduler{}

// NewStepScheduler creates an empty StepScheduler.
func NewStepScheduler() *StepScheduler {
	return &StepScheduler{}
}

// RequestFrame queues callback for the next Step.
func (s *StepScheduler) RequestFrame(callback func()) {
	if callback == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, callback)
}

// Step runs the callbacks queued before the call, like one repaint. Callbacks queued while
// stepping wait for the next Step.
//
// Returns:
//   - int: the number of callbacks run
func (s *StepScheduler) Step() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	if len(batch) > 0 {
		s.frames++
	}
	s.mu.Unlock()

	for _, cb := range batch {
		cb()
	}
	return len(batch)
}

// Steps runs n frames and stops early when nothing is pending.
//
// Returns:
//   - int: the number of frames that ran a callback
func (s *StepScheduler) Steps(n int) int {
	ran := 0
	for range n {
		if s.Step() == 0 {
			break
		}
		ran++
	}
	return ran
}

// Pending returns the number of queued callbacks.
func (s *StepScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Frames returns how many steps ran at least one callback.
func (s *StepScheduler) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

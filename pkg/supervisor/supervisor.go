// Package supervisor runs background tasks and surfaces the first
// unrecoverable fault. The process owner decides what a fault means; this
// server treats any fault as fatal and exits without draining.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
)

// Fault describes the first failure observed across supervised tasks.
type Fault struct {
	// Task is the name the task was registered under.
	Task string
	// Err is the task error, or a synthesized error for a recovered panic.
	Err error
	// Stack holds the goroutine stack when the fault came from a panic.
	Stack []byte
}

// Supervisor owns a set of background goroutines sharing one context. The
// context is canceled as soon as any task faults so siblings can stop early.
type Supervisor struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	faults chan Fault
}

// New creates a Supervisor whose tasks run under a context derived from ctx.
func New(ctx context.Context) *Supervisor {
	ctx, cancel := context.WithCancel(ctx)

	return &Supervisor{
		ctx:    ctx,
		cancel: cancel,
		faults: make(chan Fault, 1),
	}
}

// Go starts task on its own goroutine under the supervised context. A non-nil
// error (other than context.Canceled) or a panic is recorded as a fault; only
// the first fault across all tasks is retained and delivered.
func (s *Supervisor) Go(name string, task func(ctx context.Context) error) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.report(Fault{Task: name, Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()})
			}
		}()

		if err := task(s.ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.report(Fault{Task: name, Err: err})
		}
	}()
}

func (s *Supervisor) report(f Fault) {
	select {
	case s.faults <- f:
		s.cancel()
	default:
	}
}

// Fault returns the channel delivering the first fault. The channel never
// closes; a clean shutdown simply delivers nothing.
func (s *Supervisor) Fault() <-chan Fault { return s.faults }

// Context returns the supervised context, canceled on the first fault or on
// Shutdown.
func (s *Supervisor) Context() context.Context { return s.ctx }

// Shutdown cancels the supervised context and waits for all tasks to return,
// or until ctx expires.
func (s *Supervisor) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for supervised tasks: %w", ctx.Err())
	}
}

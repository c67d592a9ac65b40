// Package task manages the lifecycle of the goroutines run by a session:
// starting named loop tasks, signaling them to stop, and waiting for them to
// terminate. A panic inside a task is recovered and logged rather than
// crashing the process.
package task

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/tradewire/go-fix/logger"
)

// Func is the body of a loop task. It is called repeatedly until it returns
// false or the manager is stopped.
type Func func() bool

// CancelFunc is called when a loop task exits, regardless of the reason.
type CancelFunc func()

// Manager runs named goroutine loops under a shared context. Stop cancels
// the context; Wait blocks until every loop has returned.
type Manager struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger logger.Logger
	count  atomic.Int32
}

// NewManager creates a Manager whose tasks stop when the given parent
// context is canceled or Stop is called.
func NewManager(ctx context.Context, l logger.Logger) *Manager {
	mgr := &Manager{logger: l}
	mgr.ctx, mgr.cancel = context.WithCancel(ctx)
	return mgr
}

// Context returns the manager's context. Tasks that block on channels should
// include it in their select.
func (mgr *Manager) Context() context.Context {
	return mgr.ctx
}

// Start launches a named goroutine that calls fn repeatedly until fn returns
// false or the manager is stopped. cancelFn, if non-nil, runs when the loop
// exits.
func (mgr *Manager) Start(name string, fn Func, cancelFn CancelFunc) error {
	select {
	case <-mgr.ctx.Done():
		return errors.New("task manager already stopped")
	default:
	}

	mgr.logger.Debug("start task", "name", name)
	mgr.wg.Add(1)
	mgr.count.Add(1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				mgr.logger.Error("panic in task", "name", name, "panic", r)
			}
			if cancelFn != nil {
				cancelFn()
			}
			mgr.count.Add(-1)
			mgr.wg.Done()
			mgr.logger.Debug("task terminated", "name", name, "task_count", mgr.TaskCount())
		}()

		for {
			select {
			case <-mgr.ctx.Done():
				return
			default:
				if !fn() {
					return
				}
			}
		}
	}()

	return nil
}

// Stop signals all running tasks to terminate.
func (mgr *Manager) Stop() {
	mgr.cancel()
}

// Wait blocks until all tasks have terminated.
func (mgr *Manager) Wait() {
	mgr.wg.Wait()
}

// TaskCount returns the number of currently running tasks.
func (mgr *Manager) TaskCount() int {
	return int(mgr.count.Load())
}

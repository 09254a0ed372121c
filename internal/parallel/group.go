// Package parallel runs a fixed set of tasks on their own goroutines and
// joins them as a group.
//
// Run is the structured fan-out used by the parallel filter driver: every
// task is started before the caller waits, the caller returns only after
// every task has returned, and panics are converted into errors at the
// goroutine boundary so the group always joins.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// ErrPanic is matched by every *PanicError.
var ErrPanic = errors.New("parallel: task panicked")

// PanicError records a panic recovered from a task.
type PanicError struct {
	// Task is the index of the task that panicked.
	Task int

	// Value is the value passed to panic.
	Value any

	// Stack is the goroutine stack at the time of the panic.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("parallel: task %d panicked: %v", e.Task, e.Value)
}

// Is reports whether target is ErrPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrPanic
}

// Unwrap returns Value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Task is a unit of work run by Run. i is the task index in [0, n).
type Task func(ctx context.Context, i int) error

// Run starts n goroutines, one per task index, and blocks until all of them
// have returned.
//
// The context passed to tasks is cancelled as soon as any task fails or the
// parent ctx is done. Failures of all tasks are combined with errors.Join in
// task order, so the result is nil only if every task returned nil.
//
// For n <= 0 Run returns nil without starting anything.
func Run(ctx context.Context, n int, task Task) error {
	if n <= 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)

	// Each goroutine writes only errs[i].
	errs := make([]error, n)
	for i := range n {
		g.Go(func() error {
			errs[i] = call(gctx, i, task)
			return errs[i]
		})
	}

	// The first error is also in errs.
	_ = g.Wait()

	return errors.Join(errs...)
}

// call runs task and converts a panic into a *PanicError.
func call(ctx context.Context, i int, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Task: i, Value: r, Stack: debug.Stack()}
		}
	}()
	return task(ctx, i)
}

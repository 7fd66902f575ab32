// Package operation implements the authorize-then-execute protocol every
// mutating use case goes through.
//
// An Operation is assembled from an Authorizer and a Work function. Execute
// always evaluates CanExecute first and only runs the work when the acting
// user is authorized, so a rejected caller never reaches the stores.
package operation

import (
	"context"
)

// Work performs the mutation or query of a single operation
type Work[T any] func(ctx context.Context) (T, error)

// Executable is the contract the service layer consumes
type Executable[T any] interface {
	Name() string
	CanExecute(ctx context.Context) error
	Execute(ctx context.Context) (T, error)
}

// Operation binds an acting user to an authorizer and a unit of work
type Operation[T any] struct {
	name       string
	userID     int64
	authorizer Authorizer
	work       Work[T]
}

// New creates an operation executed on behalf of userID
func New[T any](name string, userID int64, authorizer Authorizer, work Work[T]) *Operation[T] {
	return &Operation[T]{
		name:       name,
		userID:     userID,
		authorizer: authorizer,
		work:       work,
	}
}

// Name returns the operation name used in logs and metrics
func (o *Operation[T]) Name() string {
	return o.name
}

// UserID returns the acting user
func (o *Operation[T]) UserID() int64 {
	return o.userID
}

// CanExecute reports whether the acting user may run the operation. It never mutates state.
func (o *Operation[T]) CanExecute(ctx context.Context) error {
	if o.authorizer == nil {
		return denied(o.name, "no authorizer configured")
	}
	return o.authorizer.Authorize(ctx, o.userID)
}

// Execute runs CanExecute and, if it succeeds, the work function
func (o *Operation[T]) Execute(ctx context.Context) (T, error) {
	if err := o.CanExecute(ctx); err != nil {
		var zero T
		return zero, err
	}
	return o.work(ctx)
}

var _ Executable[struct{}] = (*Operation[struct{}])(nil)

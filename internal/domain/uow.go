package domain

import "context"

// UnitOfWork groups storage mutations into one atomic all-or-nothing scope.
// Run executes fn and commits when it returns nil; any error aborts the
// whole scope and no mutation issued inside it remains visible. Repository
// calls join the scope by using the context passed to fn.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

package usecase

import "errors"

var (
	// ErrValidation marks malformed input: bad ids, non-positive add
	// quantities, unknown referenced products/rooms, unparseable statuses.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyCart is returned when checkout finds no cart lines. The
	// transaction is already rolled back and nothing was written.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckout wraps any failure inside the checkout transaction. The
	// transaction is rolled back entirely, so retrying is safe.
	ErrCheckout = errors.New("checkout failed")

	// ErrDependency marks a collaborator failure that cannot roll back
	// already-committed state, e.g. missing customer contact data during
	// the accept transition.
	ErrDependency = errors.New("dependency failure")
)

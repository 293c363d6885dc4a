package roster

import (
	"errors"
	"fmt"
)

// Recoverable failures. An operation that returns one of these leaves the
// store exactly as it was; the caller can report the problem and carry on.
var (
	// ErrAliasInUse means the requested alias already names an entity in
	// the same namespace.
	ErrAliasInUse = errors.New("alias is already in use")

	// ErrNoSuchDepartment means no department is registered under the
	// given alias or identifier.
	ErrNoSuchDepartment = errors.New("no such department")

	// ErrNoSuchPerson means no person is registered under the given alias
	// or identifier.
	ErrNoSuchPerson = errors.New("no such person")

	// ErrSameDepartment means a transfer named the department the person
	// is already in.
	ErrSameDepartment = errors.New("person is already in that department")

	// ErrAlreadyListed means a department roster already holds the entry
	// being inserted.
	ErrAlreadyListed = errors.New("already listed in department")

	// ErrNotListed means a department roster does not hold the entry
	// being removed.
	ErrNotListed = errors.New("not listed in department")
)

// CorruptionError reports an internal-consistency failure: something the
// store guarantees by construction was observed to be false, such as a
// person missing from the roster of their own department. User input can
// never produce one. After a CorruptionError the in-memory state can no
// longer be trusted and the session must end.
type CorruptionError struct {
	Op     string // the operation that tripped over the inconsistency
	Detail string // what was expected versus found
	Err    error  // underlying cause, when one exists
}

// Error implements the error interface.
func (e *CorruptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("roster corrupted: %s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("roster corrupted: %s: %s", e.Op, e.Detail)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *CorruptionError) Unwrap() error { return e.Err }

// IsCorruption reports whether err carries a CorruptionError anywhere in
// its chain.
func IsCorruption(err error) bool {
	var ce *CorruptionError
	return errors.As(err, &ce)
}

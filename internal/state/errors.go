package state

import "fmt"

// ValidationError reports a required field missing or blank on create.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// NotFoundError reports an operation against an unknown application id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("application %q not found", e.ID)
}

// ImportError reports a malformed import payload. State is left
// untouched when one is returned.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import snapshot: %v", e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// PersistenceError reports a storage failure. It is logged and carried
// on the warning channel, never returned from a mutation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

package industry

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalState marks programming-contract violations
	ErrIllegalState = errors.New("illegal state")

	// ErrDataProviderMissing is returned when a task is built without a data provider
	ErrDataProviderMissing = fmt.Errorf("%w: data provider not set", ErrIllegalState)

	// ErrDocumentNotFound is returned when a stored task document does not exist
	ErrDocumentNotFound = errors.New("task document not found")
)

// TaskLoadError indicates a persisted task record could not be turned into a
// fully initialized task. No partially loaded task accompanies it.
type TaskLoadError struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *TaskLoadError) Error() string {
	kind := string(e.Kind)
	if kind == "" {
		kind = "untyped"
	}
	if e.Err != nil {
		return fmt.Sprintf("cannot load %s task: %s: %v", kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot load %s task: %s", kind, e.Reason)
}

func (e *TaskLoadError) Unwrap() error {
	return e.Err
}

func newTaskLoadError(kind Kind, reason string, err error) *TaskLoadError {
	return &TaskLoadError{Kind: kind, Reason: reason, Err: err}
}

// IsTaskLoad reports whether err is, or wraps, a TaskLoadError
func IsTaskLoad(err error) bool {
	var tle *TaskLoadError
	return errors.As(err, &tle)
}

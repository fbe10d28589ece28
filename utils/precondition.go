package utils

import (
	"errors"
	"fmt"
)

// ErrPreconditionViolated is wrapped by every error a kernel returns. A call
// that fails with it has not modified any caller buffer.
var ErrPreconditionViolated = errors.New("precondition violated")

// PreconditionError names the operation and the broken input contract.
type PreconditionError struct {
	Op     string
	Reason string
}

func NewPreconditionError(op, format string, args ...interface{}) *PreconditionError {
	return &PreconditionError{
		Op:     op,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrPreconditionViolated, e.Reason)
}

func (e *PreconditionError) Unwrap() error { return ErrPreconditionViolated }

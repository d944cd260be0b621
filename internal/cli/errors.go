package cli

import (
	"errors"
	"fmt"

	"github.com/utec/diagram-cli/internal/cloud/diagram"
)

// NewPrivileged creates a CLI error whose message exposes the root cause of err
// The full chain stays reachable through errors.Is and errors.As
func NewPrivileged(message string, err error) error {
	return privilegedErr{message, err}
}

type privilegedErr struct {
	message string
	cause   error
}

func (err privilegedErr) Error() string {
	if err.cause == nil {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.message, rootCause(err.cause))
}

func (err privilegedErr) Unwrap() error { return err.cause }

func rootCause(err error) error {
	for {
		cause := errors.Unwrap(err)
		if cause == nil {
			return err
		}
		err = cause
	}
}

// DisableUsage disables the usage printing when an error occurs
type DisableUsage interface {
	DisableUsage() struct{}
}

type errDisableUsage struct {
	error
}

func (err errDisableUsage) DisableUsage() struct{} { return struct{}{} }

func (err errDisableUsage) Unwrap() error { return err.error }

func disablesUsage(err error) bool {
	var disableUsage DisableUsage
	return errors.As(err, &disableUsage)
}

// requiresLogin reports whether the command failed for lack of a valid session,
// either caught locally or rejected by the diagram API
func requiresLogin(err error) bool {
	var errUnauthenticated diagram.ErrUnauthenticated
	return errors.As(err, &errUnauthenticated) || diagram.IsUnauthorized(err)
}

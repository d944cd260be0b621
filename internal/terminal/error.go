package terminal

import (
	"errors"
)

const (
	logFieldErr    = "err"
	logFieldStatus = "status"
	logFieldCause  = "cause"
)

// StatusError is an error carrying the HTTP status of a rejected request
type StatusError interface {
	error
	HTTPStatus() int
}

type errorMessage struct {
	err error
}

func (e errorMessage) Error() string {
	return e.err.Error()
}

func (e errorMessage) Message() (string, error) {
	return e.err.Error(), nil
}

// Payload reports the error along with the status of a rejected request
// and the root cause of a wrapped error, when there is one
func (e errorMessage) Payload() ([]string, map[string]interface{}, error) {
	fields := []string{logFieldErr}
	payload := map[string]interface{}{logFieldErr: e.err.Error()}

	var statusErr StatusError
	if errors.As(e.err, &statusErr) {
		fields = append(fields, logFieldStatus)
		payload[logFieldStatus] = statusErr.HTTPStatus()
	}

	if cause := rootCause(e.err); cause.Error() != e.err.Error() {
		fields = append(fields, logFieldCause)
		payload[logFieldCause] = cause.Error()
	}

	return fields, payload, nil
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

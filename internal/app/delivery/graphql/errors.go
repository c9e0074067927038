package graphql

import (
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
)

// operationError exposes the client message and the error kind under
// extensions.code. Developer details stay in the logs.
type operationError struct {
	message string
	code    string
	err     error
}

func newOperationError(err error) *operationError {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return &operationError{message: customErr.ClientMessage, code: customErr.Code, err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &operationError{message: constvars.ErrClientServerLongRespond, code: constvars.ErrCodeInternal, err: err}
	}
	return &operationError{message: constvars.ErrClientSomethingWrongWithApplication, code: constvars.ErrCodeInternal, err: err}
}

func (e *operationError) Error() string {
	return e.message
}

func (e *operationError) Unwrap() error {
	return e.err
}

func (e *operationError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.code,
	}
}

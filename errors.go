package saga

import (
	"errors"
	"fmt"
)

// ErrSagaNotFound indicates that no saga is registered under the requested
// name.
var ErrSagaNotFound = errors.New("saga not found")

// ErrDuplicateSaga indicates that a saga is already registered under the
// requested name.
var ErrDuplicateSaga = errors.New("saga already registered")

func duplicateSagaError(name SagaName) error {
	return fmt.Errorf("saga with name '%s': %w", name, ErrDuplicateSaga)
}

func sagaNotFoundError(name SagaName) error {
	return fmt.Errorf("saga with name '%s': %w", name, ErrSagaNotFound)
}

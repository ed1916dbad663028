package utils

import (
	"errors"
	"fmt"
)

var ErrorRecordNotFound = errors.New("record not found")

var ErrorValidation = errors.New("validation failed")

var ErrorStorage = errors.New("storage failure")

// ValidationError wraps ErrorValidation with a caller-facing detail message.
func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrorValidation, fmt.Sprintf(format, args...))
}

// StorageError wraps a driver-level failure so business callers can
// distinguish it from validation and not-found outcomes.
func StorageError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrorStorage, err)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrorRecordNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrorValidation)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrorStorage)
}

package wifi

import (
	"errors"
	"fmt"
)

var (
	// ErrOperationFailed is the single failure kind of the pipeline. Every
	// host command or library failure matches it through errors.Is.
	ErrOperationFailed = errors.New("operation failed")

	// ErrInvalidPayload is returned by ParsePayload for text that is not a
	// well-formed Wi-Fi QR payload.
	ErrInvalidPayload = errors.New("invalid Wi-Fi QR payload")
)

// OperationError records which operation failed and why.
type OperationError struct {
	// Op names the failed operation, e.g. "read SSID".
	Op string

	// Err is the underlying cause.
	Err error
}

// NewOperationError wraps err as an OperationError. It returns nil for a nil err.
func NewOperationError(op string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return err
	}
	return &OperationError{Op: op, Err: err}
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrOperationFailed.
func (e *OperationError) Is(target error) bool {
	return target == ErrOperationFailed
}

package wifi

import (
	"errors"
	"testing"
)

func TestOperationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("exit status 1")

	t.Run("matches ErrOperationFailed", func(t *testing.T) {
		t.Parallel()
		err := NewOperationError("read SSID", cause)
		if !errors.Is(err, ErrOperationFailed) {
			t.Error("expected errors.Is(err, ErrOperationFailed)")
		}
		if !errors.Is(err, cause) {
			t.Error("expected the cause to be reachable through Unwrap")
		}
		if err.Error() != "read SSID: exit status 1" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("nil error stays nil", func(t *testing.T) {
		t.Parallel()
		if err := NewOperationError("noop", nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("does not double wrap", func(t *testing.T) {
		t.Parallel()
		inner := NewOperationError("read SSID", cause)
		outer := NewOperationError("pipeline", inner)
		if outer != inner {
			t.Errorf("expected the existing OperationError to be returned, got %v", outer)
		}
	})

	t.Run("plain errors do not match", func(t *testing.T) {
		t.Parallel()
		if errors.Is(cause, ErrOperationFailed) {
			t.Error("plain error should not match ErrOperationFailed")
		}
	})
}

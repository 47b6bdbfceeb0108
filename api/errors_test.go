// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"errors"
	"strings"
	"testing"
)

func TestError_UnwrapsToSentinel(t *testing.T) {
	err := NewError(ErrCodeOutOfMemory, ErrOutOfMemory).
		WithContext("size", 4096)

	if !errors.Is(err, ErrOutOfMemory) {
		t.Error("structured error must match its sentinel cause")
	}
	var perr *Error
	if !errors.As(err, &perr) || perr.Code != ErrCodeOutOfMemory {
		t.Errorf("errors.As must recover the structured form, got %v", err)
	}
}

func TestError_MessageIncludesContext(t *testing.T) {
	err := NewError(ErrCodeInvalidCount, ErrInvalidCount).
		WithContext("count", 99)

	msg := err.Error()
	if !strings.Contains(msg, ErrInvalidCount.Error()) {
		t.Errorf("message must include the cause: %q", msg)
	}
	if !strings.Contains(msg, "99") {
		t.Errorf("message must include the offending parameter: %q", msg)
	}
}

func TestError_NoContext(t *testing.T) {
	err := NewError(ErrCodePoolClosed, ErrPoolClosed)
	if err.Error() != ErrPoolClosed.Error() {
		t.Errorf("context-free error must read as its cause: %q", err.Error())
	}
}

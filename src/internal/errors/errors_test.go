package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeNotFound, Message: "Product not found"},
			expected: "[NOT_FOUND] Product not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeIO, "failed to save products", errors.New("disk full")),
			expected: "[IO_FAILURE] failed to save products: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeConflict, Message: "product exists"}
	err2 := &Error{Code: ErrCodeConflict, Message: "another conflict"}
	err3 := &Error{Code: ErrCodeNotFound, Message: "missing"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}

	wrapped := fmt.Errorf("handler: %w", err1)
	if !errors.Is(wrapped, &Error{Code: ErrCodeConflict}) {
		t.Errorf("Expected errors.Is to see through fmt wrapping")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"domain error", NewNotFound("x"), ErrCodeNotFound},
		{"wrapped domain error", fmt.Errorf("ctx: %w", NewParseError("bad json", nil)), ErrCodeParse},
		{"plain error", errors.New("boom"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessageOf_HidesCause(t *testing.T) {
	err := NewIOError("Failed to save products", errors.New("open /secret/path: permission denied"))

	if got := MessageOf(err); got != "Failed to save products" {
		t.Errorf("MessageOf() = %q, want %q", got, "Failed to save products")
	}
}

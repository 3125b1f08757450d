package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "item %s", "a")

	if err.Code != ErrCodeNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNotFound)
	}
	if err.Message != "item a" {
		t.Errorf("Message = %v, want %v", err.Message, "item a")
	}
	expected := "NOT_FOUND: item a"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk gone")
	err := Wrap(ErrCodeInvalidInput, cause, "read order file")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	expected := "INVALID_INPUT: read order file: disk gone"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidTarget, "x"), ErrCodeInvalidTarget, true},
		{"different code", New(ErrCodeInvalidTarget, "x"), ErrCodeNotFound, false},
		{"wrapped by fmt", fmt.Errorf("outer: %w", New(ErrCodeOutOfRange, "x")), ErrCodeOutOfRange, true},
		{"plain error", errors.New("x"), ErrCodeNotFound, false},
		{"nil", nil, ErrCodeNotFound, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Is(test.err, test.code); got != test.expected {
				t.Errorf("Is() = %v, want %v", got, test.expected)
			}
		})
	}
}

func TestGetCodeAndUserMessage(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New(ErrCodeInvariantViolation, "duplicate %s", "b"))
	if GetCode(err) != ErrCodeInvariantViolation {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeInvariantViolation)
	}
	if UserMessage(err) != "duplicate b" {
		t.Errorf("UserMessage() = %q, want %q", UserMessage(err), "duplicate b")
	}
	if GetCode(errors.New("plain")) != "" {
		t.Error("GetCode() of a plain error should be empty")
	}
	if UserMessage(errors.New("plain")) != "plain" {
		t.Error("UserMessage() of a plain error should be its text")
	}
}

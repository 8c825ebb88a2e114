package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodePrecondition, "empty sample list")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodePrecondition {
		t.Errorf("expected code %s, got %s", ErrCodePrecondition, err.Code)
	}
	if err.Message != "empty sample list" {
		t.Errorf("expected message 'empty sample list', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("division by zero")
	ctx := map[string]any{
		"channel": 2,
		"stage":   100,
	}

	err := WrapWithContext(ErrCodeNumericDegenerate, "current spread undefined", cause, ctx)

	if err.Code != ErrCodeNumericDegenerate {
		t.Errorf("expected code %s, got %s", ErrCodeNumericDegenerate, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["channel"] != 2 {
		t.Errorf("expected channel to be 2")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "direct",
			err:  New(ErrCodeEmptyResult, "no currents"),
			want: ErrCodeEmptyResult,
		},
		{
			name: "wrapped with fmt",
			err:  fmt.Errorf("stage 100: %w", New(ErrCodeNumericDegenerate, "zero max")),
			want: ErrCodeNumericDegenerate,
		},
		{
			name: "outermost wins",
			err:  Wrap(ErrCodePrecondition, "raw input", New(ErrCodeEmptyResult, "inner")),
			want: ErrCodePrecondition,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := Wrap(ErrCodePrecondition, "raw input", New(ErrCodeEmptyResult, "inner"))

	if !IsCode(err, ErrCodePrecondition) {
		t.Errorf("expected outer code to match")
	}
	if !IsCode(err, ErrCodeEmptyResult) {
		t.Errorf("expected inner code to match")
	}
	if IsCode(err, ErrCodeNotFound) {
		t.Errorf("unexpected match for %s", ErrCodeNotFound)
	}
	if IsCode(nil, ErrCodeInternal) {
		t.Errorf("nil error should not match")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodePrecondition,
		ErrCodeEmptyResult,
		ErrCodeNumericDegenerate,
		ErrCodeNotFound,
		ErrCodeInvalidRequest,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}

package iblt

import (
	"errors"
	"testing"
)

func TestErrors(t *testing.T) {
	// Verify all errors are defined and distinct
	errs := []error{
		ErrValueSizeMismatch,
		ErrShapeMismatch,
	}

	// Check none are nil
	for i, err := range errs {
		if err == nil {
			t.Errorf("error at index %d is nil", i)
		}
	}

	// Check all are distinct
	seen := make(map[string]int)
	for i, err := range errs {
		msg := err.Error()
		if prev, ok := seen[msg]; ok {
			t.Errorf("error at index %d has same message as index %d: %q", i, prev, msg)
		}
		seen[msg] = i
	}
}

func TestErrorsAreErrors(t *testing.T) {
	// Verify errors work with errors.Is
	tests := []struct {
		name string
		err  error
	}{
		{"ErrValueSizeMismatch", ErrValueSizeMismatch},
		{"ErrShapeMismatch", ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.err) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.err)
			}
		})
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{NotPresent, "NotPresent"},
		{Found, "Found"},
		{Undecidable, "Undecidable"},
		{Result(99), "Result(?)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", int(tt.r), got, tt.want)
		}
	}
}

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"new", New(ErrCodeNotFound, "vertex %d not in graph", 7), "NOT_FOUND: vertex 7 not in graph"},
		{"wrap", Wrap(ErrCodeIO, errors.New("disk full"), "write %s", "a.xml"), "IO_ERROR: write a.xml: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "write")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	inner := New(ErrCodeInvalidColor, "bad color")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeConflict, "overlap"), ErrCodeConflict, true},
		{"other code", New(ErrCodeConflict, "overlap"), ErrCodeNotFound, false},
		{"outer code of chain", Wrap(ErrCodeInvalidFormat, inner, "decode"), ErrCodeInvalidFormat, true},
		{"inner code of chain", Wrap(ErrCodeInvalidFormat, inner, "decode"), ErrCodeInvalidColor, true},
		{"behind fmt wrap", fmt.Errorf("value:degree: %w", inner), ErrCodeInvalidColor, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"error", New(ErrCodeInvalidState, "nothing to undo"), ErrCodeInvalidState},
		{"outermost wins", Wrap(ErrCodeIO, New(ErrCodeInvalidPath, "bad"), "export"), ErrCodeIO},
		{"behind fmt wrap", fmt.Errorf("ctx: %w", New(ErrCodeUnsupported, "x")), ErrCodeUnsupported},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeFileNotFound, "open %s", "a.json")); got != "open a.json" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q", got)
	}
}

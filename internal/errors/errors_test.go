package apperrors

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestUsageError_Message(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want string
	}{
		{
			name: "no arguments",
			got:  0,
			want: "requires exactly one integer argument, got 0",
		},
		{
			name: "too many arguments",
			got:  2,
			want: "requires exactly one integer argument, got 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &UsageError{Got: tt.got}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Input: "abc", Err: strconv.ErrSyntax}

	if !strings.Contains(err.Error(), `"abc"`) {
		t.Errorf("Error() = %q, should name the offending input", err.Error())
	}

	if !strings.Contains(err.Error(), strconv.ErrSyntax.Error()) {
		t.Errorf("Error() = %q, should include the cause", err.Error())
	}
}

func TestParseError_Unwrap(t *testing.T) {
	cause := strconv.ErrRange
	err := &ParseError{Input: "99999999999999999999", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}

	var parseErr *ParseError
	if !errors.As(error(err), &parseErr) {
		t.Error("errors.As should match *ParseError")
	}
}

package sanitize

import (
	"errors"
	"strings"
	"testing"
)

func TestInput_SizeLimit(t *testing.T) {
	limit := DefaultMaxInputSize

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Input(strings.Repeat("a", tt.inputSize))
			if tt.wantErr {
				if !errors.Is(err, ErrInputTooLarge) {
					t.Errorf("Input() expected ErrInputTooLarge for size %d, got %v", tt.inputSize, err)
				}
			} else if err != nil {
				t.Errorf("Input() unexpected error: %v", err)
			}
		})
	}
}

func TestInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "8")

	if _, err := Input("3,3,1\n0,0,0"); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("expected override to reject 11 bytes, got %v", err)
	}

	t.Setenv(EnvMaxInputSize, "garbage")
	if _, err := Input("3,3,1\n0,0,0"); err != nil {
		t.Errorf("invalid override should fall back to the default, got %v", err)
	}
}

func TestInput_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"State", "3,3,1\n0,0,0", "3,3,1\n0,0,0"},
		{"Windows Newlines", "3,3,1\r\n0,0,0\r\n", "3,3,1\r\n0,0,0\r\n"},
		{"ANSI Code", "\x1b[31m3,3,1\x1b[0m", "[31m3,3,1[0m"},
		{"Null Byte", "3,3\x00,1", "3,3,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Input(tt.input)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestInput_InvalidUTF8(t *testing.T) {
	if _, err := Input("3,3,1\xff"); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

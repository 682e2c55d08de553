package errors

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped error",
			err:      errors.New("failed to load storage: permission denied"),
			expected: "Error: failed to load storage: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	result := Formatf("habit %q not found", "Read")
	expected := `Error: habit "Read" not found`
	if result != expected {
		t.Errorf("Formatf() = %q, want %q", result, expected)
	}
}

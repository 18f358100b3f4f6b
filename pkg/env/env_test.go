package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	t.Setenv("ARDUINOENV_TEST_DIR", "/opt/arduino")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "tilde slash",
			input: "~/.arduino15",
			want:  filepath.Join(home, ".arduino15"),
		},
		{
			name:  "bare tilde",
			input: "~",
			want:  home,
		},
		{
			name:  "env var",
			input: "$ARDUINOENV_TEST_DIR/hardware",
			want:  "/opt/arduino/hardware",
		},
		{
			name:  "braced env var",
			input: "${ARDUINOENV_TEST_DIR}/hardware",
			want:  "/opt/arduino/hardware",
		},
		{
			name:  "plain path untouched",
			input: "/usr/share/arduino",
			want:  "/usr/share/arduino",
		},
		{
			name:  "tilde in middle untouched",
			input: "/opt/~arduino",
			want:  "/opt/~arduino",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

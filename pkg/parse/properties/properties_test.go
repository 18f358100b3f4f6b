package properties

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		want          map[string]string
		wantMalformed int
	}{
		{
			name:  "simple pairs",
			input: "board=uno\nsketchbook.path=/home/alice/Arduino\n",
			want: map[string]string{
				"board":           "uno",
				"sketchbook.path": "/home/alice/Arduino",
			},
		},
		{
			name:  "crlf line endings",
			input: "board=uno\r\nserial.port=/dev/ttyACM0\r\n",
			want: map[string]string{
				"board":       "uno",
				"serial.port": "/dev/ttyACM0",
			},
		},
		{
			name:  "bare cr line endings",
			input: "board=uno\rserial.port=COM3\r",
			want: map[string]string{
				"board":       "uno",
				"serial.port": "COM3",
			},
		},
		{
			name:  "comments and blanks skipped",
			input: "# generated by the IDE\n\nboard=uno\n   \n# trailing comment\n",
			want: map[string]string{
				"board": "uno",
			},
		},
		{
			name:  "value containing equals",
			input: "build.extra_flags=-DDEBUG=1\n",
			want: map[string]string{
				"build.extra_flags": "-DDEBUG=1",
			},
		},
		{
			name:  "whitespace trimmed around key and value",
			input: "  board =  uno  \n",
			want: map[string]string{
				"board": "uno",
			},
		},
		{
			name:  "later duplicate wins",
			input: "board=uno\nboard=mega\n",
			want: map[string]string{
				"board": "mega",
			},
		},
		{
			name:  "empty value kept",
			input: "proxy.user=\n",
			want: map[string]string{
				"proxy.user": "",
			},
		},
		{
			name:          "line without separator is malformed",
			input:         "board=uno\nthis is not a pair\nserial.port=COM3\n",
			wantMalformed: 1,
			want: map[string]string{
				"board":       "uno",
				"serial.port": "COM3",
			},
		},
		{
			name:  "no trailing newline",
			input: "board=uno",
			want: map[string]string{
				"board": "uno",
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got.Malformed != tt.wantMalformed {
				t.Errorf("Parse() malformed = %d, want %d", got.Malformed, tt.wantMalformed)
			}
			if len(got.Values) != len(tt.want) {
				t.Fatalf("Parse() = %+v, want %+v", got.Values, tt.want)
			}
			for k, v := range tt.want {
				if got.Values[k] != v {
					t.Errorf("Parse()[%q] = %q, want %q", k, got.Values[k], v)
				}
			}
		})
	}
}

func TestParseOrdered(t *testing.T) {
	input := "arduino.avrdude=6.3.0-arduino9\narduino.avr-gcc=4.8.3\narduino.avrdude=6.0.1\n"
	got, err := ParseOrdered(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseOrdered() error = %v", err)
	}

	want := []Pair{
		{Key: "arduino.avrdude", Value: "6.3.0-arduino9"},
		{Key: "arduino.avr-gcc", Value: "4.8.3"},
		{Key: "arduino.avrdude", Value: "6.0.1"},
	}
	if len(got.Pairs) != len(want) {
		t.Fatalf("ParseOrdered() = %+v, want %+v", got.Pairs, want)
	}
	for i := range want {
		if got.Pairs[i] != want[i] {
			t.Errorf("Pairs[%d] = %+v, want %+v", i, got.Pairs[i], want[i])
		}
	}
}

func TestParseFile(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "preferences.txt")
		if err := os.WriteFile(path, []byte("board=uno\n"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile() error = %v", err)
		}
		if got.Values["board"] != "uno" {
			t.Errorf("ParseFile()[board] = %q, want uno", got.Values["board"])
		}
	})

	t.Run("missing file yields empty map", func(t *testing.T) {
		got, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
		if err != nil {
			t.Fatalf("ParseFile() error = %v", err)
		}
		if got.Values == nil || len(got.Values) != 0 {
			t.Errorf("ParseFile() = %+v, want empty map", got.Values)
		}
	})
}

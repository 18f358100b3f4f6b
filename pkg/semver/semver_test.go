package semver

import (
	"sort"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input      string
		wantParts  []int
		wantSuffix string
		wantSufNum int
	}{
		{input: "1.2.3", wantParts: []int{1, 2, 3}},
		{input: "v1.2.3", wantParts: []int{1, 2, 3}},
		{input: "6.3.0-arduino9", wantParts: []int{6, 3, 0}, wantSuffix: "arduino9", wantSufNum: 9},
		{input: "6.3.0-arduino14", wantParts: []int{6, 3, 0}, wantSuffix: "arduino14", wantSufNum: 14},
		{input: "4.8.3-2014q1", wantParts: []int{4, 8, 3}, wantSuffix: "2014q1", wantSufNum: 1},
		{input: "0.0.1", wantParts: []int{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Parse(tt.input)
			if got.Original != tt.input {
				t.Errorf("Original = %q, want %q", got.Original, tt.input)
			}
			if len(got.Parts) != len(tt.wantParts) {
				t.Fatalf("Parts = %v, want %v", got.Parts, tt.wantParts)
			}
			for i := range tt.wantParts {
				if got.Parts[i] != tt.wantParts[i] {
					t.Errorf("Parts[%d] = %d, want %d", i, got.Parts[i], tt.wantParts[i])
				}
			}
			if got.Suffix != tt.wantSuffix {
				t.Errorf("Suffix = %q, want %q", got.Suffix, tt.wantSuffix)
			}
			if got.SuffixNum != tt.wantSufNum {
				t.Errorf("SuffixNum = %d, want %d", got.SuffixNum, tt.wantSufNum)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.4", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.2", "1.2.0", 0},
		{"6.3.0-arduino9", "6.3.0-arduino14", -1},
		{"6.3.0-arduino9", "6.3.0", 1},
		{"6.3.0-arduino9", "6.0.1", 1},
		{"v1.2.3", "1.2.3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			if got := Parse(tt.a).Compare(Parse(tt.b)); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	versions := SemVers{
		Parse("6.3.0-arduino14"),
		Parse("6.0.1"),
		Parse("6.3.0-arduino9"),
		Parse("4.8.3-2014q1"),
	}
	sort.Sort(versions)

	want := []string{"4.8.3-2014q1", "6.0.1", "6.3.0-arduino9", "6.3.0-arduino14"}
	for i, w := range want {
		if versions[i].Original != w {
			t.Errorf("sorted[%d] = %s, want %s", i, versions[i].Original, w)
		}
	}
}

func TestLatest(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		want     string
	}{
		{
			name:     "mixed suffixes",
			versions: []string{"6.0.1", "6.3.0-arduino9", "6.3.0-arduino14"},
			want:     "6.3.0-arduino14",
		},
		{
			name:     "single",
			versions: []string{"1.0.0"},
			want:     "1.0.0",
		},
		{
			name:     "empty",
			versions: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Latest(tt.versions); got != tt.want {
				t.Errorf("Latest(%v) = %q, want %q", tt.versions, got, tt.want)
			}
		})
	}
}

package semver

import (
	"strconv"
	"strings"
)

// SemVer represents an Arduino-style tool version such as "6.3.0" or
// "6.3.0-arduino9". The suffix after the first '-' is kept verbatim;
// its trailing digits participate in ordering so "arduino14" sorts
// above "arduino9".
type SemVer struct {
	Original  string // Original string (e.g., "6.3.0-arduino9")
	Parts     []int  // Parsed numeric parts [6, 3, 0]
	Suffix    string // Raw suffix ("arduino9"), empty if none
	SuffixNum int    // Trailing digits of the suffix (9), 0 if none
}

// Parse parses a version string into a SemVer struct
func Parse(v string) SemVer {
	original := v

	// Remove 'v' prefix if present
	v = strings.TrimPrefix(v, "v")

	base, suffix, _ := strings.Cut(v, "-")

	parts := strings.Split(base, ".")
	var nums []int
	for _, part := range parts {
		numPart := ""
		for _, r := range part {
			if r >= '0' && r <= '9' {
				numPart += string(r)
			} else {
				break
			}
		}
		if numPart == "" {
			nums = append(nums, 0)
		} else {
			n, _ := strconv.Atoi(numPart)
			nums = append(nums, n)
		}
	}

	return SemVer{
		Original:  original,
		Parts:     nums,
		Suffix:    suffix,
		SuffixNum: trailingNumber(suffix),
	}
}

// trailingNumber extracts the numeric tail of a suffix ("arduino9" -> 9).
func trailingNumber(s string) int {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return 0
	}
	n, _ := strconv.Atoi(s[i:])
	return n
}

// String returns the original version string
func (v SemVer) String() string {
	return v.Original
}

// Compare compares two versions
// Returns: -1 if v < other, 0 if equal, 1 if v > other
func (v SemVer) Compare(other SemVer) int {
	maxLen := len(v.Parts)
	if len(other.Parts) > maxLen {
		maxLen = len(other.Parts)
	}

	for i := 0; i < maxLen; i++ {
		vPart := 0
		otherPart := 0

		if i < len(v.Parts) {
			vPart = v.Parts[i]
		}
		if i < len(other.Parts) {
			otherPart = other.Parts[i]
		}

		if vPart < otherPart {
			return -1
		}
		if vPart > otherPart {
			return 1
		}
	}

	// Same numeric parts: a suffixed build outranks a bare one, and
	// suffix numbers order among themselves.
	if v.SuffixNum < other.SuffixNum {
		return -1
	}
	if v.SuffixNum > other.SuffixNum {
		return 1
	}
	return strings.Compare(v.Suffix, other.Suffix)
}

// Less returns true if v < other (for sorting)
func (v SemVer) Less(other SemVer) bool {
	return v.Compare(other) < 0
}

// Equal returns true if versions are equal
func (v SemVer) Equal(other SemVer) bool {
	return v.Compare(other) == 0
}

// SemVers is a slice of SemVer that implements sort.Interface
type SemVers []SemVer

func (v SemVers) Len() int           { return len(v) }
func (v SemVers) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }
func (v SemVers) Less(i, j int) bool { return v[i].Less(v[j]) }

// Latest returns the highest version among the given strings, parsing
// each. Empty input returns "".
func Latest(versions []string) string {
	var best SemVer
	found := false
	for _, raw := range versions {
		sv := Parse(raw)
		if !found || sv.Compare(best) > 0 {
			best = sv
			found = true
		}
	}
	if !found {
		return ""
	}
	return best.Original
}

package properties

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Pair is one key=value record in file order.
type Pair struct {
	Key   string
	Value string
}

// Records holds parsed pairs in file order plus how many lines were
// skipped because they had no separator.
type Records struct {
	Pairs     []Pair
	Malformed int
}

// Result holds a parsed key=value map plus how many lines were skipped
// because they had no separator. Arduino writes preferences.txt and the
// builtin tool manifest in this format.
type Result struct {
	Values    map[string]string
	Malformed int
}

// ParseOrdered reads key=value lines from r, preserving file order and
// duplicates. Line endings are normalized across \n, \r\n and bare \r.
// Blank lines and lines starting with '#' are skipped. The first '='
// splits key from value, both trimmed. Lines without '=' count as
// malformed and are skipped.
func ParseOrdered(r io.Reader) (Records, error) {
	var out Records

	scanner := bufio.NewScanner(r)
	scanner.Split(scanLines)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			out.Malformed++
			continue
		}
		out.Pairs = append(out.Pairs, Pair{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	if err := scanner.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// Parse reads key=value lines from r into a map. Later duplicate keys
// overwrite earlier ones. See ParseOrdered for the line format.
func Parse(r io.Reader) (Result, error) {
	records, err := ParseOrdered(r)
	out := Result{Values: map[string]string{}, Malformed: records.Malformed}
	for _, p := range records.Pairs {
		out.Values[p.Key] = p.Value
	}
	return out, err
}

// ParseFile parses the file at path. A missing file is not an error:
// it yields an empty map, matching how the IDE treats absent
// preferences.
func ParseFile(path string) (Result, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return Result{Values: map[string]string{}}, nil
	}
	if err != nil {
		return Result{Values: map[string]string{}}, err
	}
	defer file.Close()
	return Parse(file)
}

// scanLines splits on \n, \r\n or a bare \r so files written on any
// platform parse the same way.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i, b := range data {
		switch b {
		case '\n':
			return i + 1, data[:i], nil
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if atEOF {
				return i + 1, data[:i], nil
			}
			// Need more data to tell \r from \r\n.
			return 0, nil, nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

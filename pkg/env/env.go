package env

import (
	"os"
	"path/filepath"
)

// ExpandPath expands ~ to the home directory and environment variables
// in a path.
// Examples:
//   - "~/.arduino15" -> "/home/user/.arduino15"
//   - "$HOME/arduino" -> "/home/user/arduino"
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			if len(path) == 1 {
				return home
			}
			if path[1] == '/' || path[1] == os.PathSeparator {
				return filepath.Join(home, path[2:])
			}
		}
	}
	return os.ExpandEnv(path)
}

//go:build !windows

package shellfolder

type systemRegistry struct{}

func (systemRegistry) ReadString(key, value string) (string, error) {
	return "", ErrRegistryUnavailable
}

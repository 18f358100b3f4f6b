//go:build windows

package shellfolder

import (
	"golang.org/x/sys/windows/registry"
)

type systemRegistry struct{}

func (systemRegistry) ReadString(key, value string) (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(value)
	if err != nil {
		return "", err
	}
	return v, nil
}

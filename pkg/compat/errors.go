package compat

import "errors"

// ErrIncompatible marks a provider as not usable in the current
// environment (wrong OS, missing socket, no session bus).
var ErrIncompatible = errors.New("provider is incompatible")

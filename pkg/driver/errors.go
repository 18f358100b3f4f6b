package driver

import "arduinoenv/pkg/compat"

// ErrIncompatible marks a provider as not applicable in the current
// environment. Alias of compat.ErrIncompatible so provider packages
// need a single import.
var ErrIncompatible = compat.ErrIncompatible

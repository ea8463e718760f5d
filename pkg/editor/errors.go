package editor

import "errors"

// ErrNoSuitableEditor is returned when every editor candidate failed.
var ErrNoSuitableEditor = errors.New("no suitable editor found")

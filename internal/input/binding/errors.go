package binding

import "errors"

// Binding errors.
var (
	// ErrInvalidCode indicates a code spec that could not be parsed.
	ErrInvalidCode = errors.New("binding: invalid code")

	// ErrEmptyAction indicates a binding with no action name.
	ErrEmptyAction = errors.New("binding: empty action name")

	// ErrUnsupportedFormat indicates a bindings file extension with no decoder.
	ErrUnsupportedFormat = errors.New("binding: unsupported file format")

	// ErrWatcherClosed indicates an operation on a closed watcher.
	ErrWatcherClosed = errors.New("binding: watcher is closed")
)

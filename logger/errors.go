package logger

import "errors"

var (
	// ErrAlreadyInitialized is wrapped by the InitError returned when a
	// logger is already installed.
	ErrAlreadyInitialized = errors.New("logger already initialized")
	// ErrNotInitialized is wrapped by the ReleaseError returned when no
	// logger is installed.
	ErrNotInitialized = errors.New("logger not initialized")
)

// InitError is returned by Init and InitWithHandler when nothing could be
// installed.
type InitError struct {
	// Path is the log file involved, if any.
	Path string
	Err  error
}

func (e *InitError) Error() string {
	if e.Path == "" {
		return "logger: init: " + e.Err.Error()
	}
	return "logger: init " + e.Path + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// ReleaseError is returned by Release.
type ReleaseError struct {
	Err error
}

func (e *ReleaseError) Error() string {
	return "logger: release: " + e.Err.Error()
}

func (e *ReleaseError) Unwrap() error {
	return e.Err
}

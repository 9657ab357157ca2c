package logger

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// levelOff is above every real level so nothing passes while no handler is
// installed.
const levelOff = ErrorLevel + 1

// global state
var (
	// slotMu guards active. Dispatch holds the read lock while the handler
	// runs so Release cannot close a sink under an in-flight write.
	slotMu sync.RWMutex
	active Handler

	// threshold is the installed MaxLevel, or levelOff.
	threshold atomic.Int32
)

func init() {
	threshold.Store(int32(levelOff))
}

// Init installs a logger built from config as the process-wide handler.
// Call Release when shutting down to flush and close the log file.
//
// Init fails if a handler is already installed, or if the file sink is
// enabled and config.FilePath cannot be created. On failure nothing is
// installed and the previous state is untouched.
func Init(config Config) error {
	slotMu.Lock()
	defer slotMu.Unlock()

	if active != nil {
		return &InitError{Err: ErrAlreadyInitialized}
	}

	h, err := newSinkHandler(config)
	if err != nil {
		return &InitError{Path: config.FilePath, Err: err}
	}

	install(h, config.MaxLevel)
	return nil
}

// InitWithHandler installs a custom handler under the same set-once rule as
// Init. Events at maxLevel or more severe are passed to h.
func InitWithHandler(h Handler, maxLevel Level) error {
	if h == nil {
		return &InitError{Err: errors.New("nil handler")}
	}

	slotMu.Lock()
	defer slotMu.Unlock()

	if active != nil {
		return &InitError{Err: ErrAlreadyInitialized}
	}

	install(h, maxLevel)
	return nil
}

// install must be called with slotMu held.
func install(h Handler, maxLevel Level) {
	active = h
	threshold.Store(int32(maxLevel))
}

// Release detaches the installed handler, closing it if it implements
// io.Closer. The handler is detached even when closing fails; the failure is
// returned as a ReleaseError. Releasing with nothing installed is an error.
func Release() error {
	slotMu.Lock()
	defer slotMu.Unlock()

	if active == nil {
		return &ReleaseError{Err: ErrNotInitialized}
	}

	h := active
	active = nil
	threshold.Store(int32(levelOff))

	if c, ok := h.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return &ReleaseError{Err: err}
		}
	}
	return nil
}

// Flush flushes buffered output of the installed handler, if it buffers.
func Flush() error {
	slotMu.RLock()
	defer slotMu.RUnlock()

	f, ok := active.(interface{ Flush() error })
	if !ok {
		return nil
	}
	return f.Flush()
}

// Enabled reports whether an event at level would reach the installed
// handler. It is false while nothing is installed.
func Enabled(level Level) bool {
	return int32(level) >= threshold.Load()
}

// Emit dispatches ev, with its explicit location, to the installed handler.
// Events below the threshold, or sent while nothing is installed, are dropped.
func Emit(ev Event) {
	if !Enabled(ev.Level) {
		return
	}

	slotMu.RLock()
	defer slotMu.RUnlock()

	// Re-check under the lock: Release may have run since the fast path.
	if active == nil || !Enabled(ev.Level) {
		return
	}
	active.Handle(ev)
}

// logf is the shared body of the level functions. depth is the number of
// frames between callSite and the user's call.
func logf(depth int, level Level, format string, args []any) {
	if !Enabled(level) {
		return
	}
	module, line := callSite(depth)
	Emit(Event{
		Level:   level,
		Module:  module,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// Logf logs at an explicit level, tagged with the caller's location.
func Logf(level Level, format string, args ...any) {
	logf(3, level, format, args)
}

// Tracef logs a trace message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func Tracef(format string, args ...any) {
	logf(3, TraceLevel, format, args)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func Debugf(format string, args ...any) {
	logf(3, DebugLevel, format, args)
}

// Infof logs an informational message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func Infof(format string, args ...any) {
	logf(3, InfoLevel, format, args)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func Warnf(format string, args ...any) {
	logf(3, WarnLevel, format, args)
}

// Errorf logs an error message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func Errorf(format string, args ...any) {
	logf(3, ErrorLevel, format, args)
}

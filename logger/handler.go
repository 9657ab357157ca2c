package logger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// Handler receives every event that passes the installed level threshold.
// Exactly one Handler is active at a time; see Init and InitWithHandler.
//
// A Handler that also implements io.Closer is closed by Release, and one
// with a Flush() error method is flushed by Flush.
//
//go:generate mockery --name Handler --case underscore --inpackage --testonly
type Handler interface {
	Handle(ev Event)
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// sinkHandler is the built-in Handler writing to the terminal and a file.
type sinkHandler struct {
	mu       sync.Mutex
	config   Config
	terminal io.Writer
	file     *os.File
	buf      *bufio.Writer
}

// newSinkHandler opens the log file when the file sink is enabled. The file
// is created or truncated.
func newSinkHandler(config Config) (*sinkHandler, error) {
	h := &sinkHandler{config: config, terminal: outStdout}
	if !config.LogToFile {
		return h, nil
	}
	if config.FilePath == "" {
		return nil, errors.New("file sink enabled without a file path")
	}
	f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	h.file = f
	h.buf = bufio.NewWriter(f)
	return h, nil
}

// Handle writes ev to every enabled sink. A failing sink does not stop the
// others; failures are reported on stderr and never returned to the caller.
func (h *sinkHandler) Handle(ev Event) {
	line := ev.line()
	rendered := line
	if h.config.Colorize {
		rendered = colorize(ev.Level, line)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var termErr, fileErr error
	if h.config.LogToTerminal {
		if _, err := io.WriteString(h.terminal, rendered+"\n"); err != nil {
			termErr = fmt.Errorf("terminal: %w", err)
		}
	}
	if h.buf != nil {
		if _, err := h.buf.WriteString(line + "\n"); err != nil {
			fileErr = fmt.Errorf("file %s: %w", h.config.FilePath, err)
		}
	}

	if err := errors.Join(termErr, fileErr); err != nil {
		fmt.Fprintf(outStderr, "logger: write failed: %v\n", err)
	}
}

// Flush writes any buffered file output.
func (h *sinkHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.buf == nil {
		return nil
	}
	return h.buf.Flush()
}

// Close flushes and closes the log file. The file is closed even if the
// flush fails.
func (h *sinkHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	flushErr := h.buf.Flush()
	closeErr := h.file.Close()
	h.file = nil
	h.buf = nil
	return errors.Join(flushErr, closeErr)
}

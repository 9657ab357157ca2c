package logger

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// captureOutput swaps stdout/stderr for buffers until the test ends. It must
// be called before Init, which binds the terminal writer.
func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdoutBuf, stderrBuf bytes.Buffer
	oldStdout, oldStderr := outStdout, outStderr
	outStdout, outStderr = &stdoutBuf, &stderrBuf
	t.Cleanup(func() { outStdout, outStderr = oldStdout, oldStderr })

	return &stdoutBuf, &stderrBuf
}

func discardOutput(t *testing.T) {
	t.Helper()

	oldStdout, oldStderr := outStdout, outStderr
	outStdout, outStderr = io.Discard, io.Discard
	t.Cleanup(func() { outStdout, outStderr = oldStdout, oldStderr })
}

// releaseAtEnd makes sure no handler leaks into the next test.
func releaseAtEnd(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { _ = Release() })
}

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

// closingHandler records events and reports closeErr from Close.
type closingHandler struct {
	events   []Event
	closed   bool
	closeErr error
}

func (h *closingHandler) Handle(ev Event) {
	h.events = append(h.events, ev)
}

func (h *closingHandler) Close() error {
	h.closed = true
	return h.closeErr
}

// countingStringer counts how often it is formatted.
type countingStringer struct {
	calls int
}

func (c *countingStringer) String() string {
	c.calls++
	return "counted"
}

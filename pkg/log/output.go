package log

import (
	"io"
	"os"
	"sync"
)

// Output defines the interface for log outputs.
type Output interface {
	Write(entry *Entry, formattedEntry []byte) error
	Close() error
}

// WriterOutput adapts any io.Writer into an Output, serializing writes.
type WriterOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterOutput wraps w as an Output.
func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{w: w}
}

// Write implements Output.
func (o *WriterOutput) Write(_ *Entry, formattedEntry []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.w.Write(formattedEntry)
	return err
}

// Close implements Output; the wrapped writer is not closed.
func (o *WriterOutput) Close() error { return nil }

// NewConsoleOutput returns an Output writing to stderr.
func NewConsoleOutput() *WriterOutput {
	return NewWriterOutput(os.Stderr)
}

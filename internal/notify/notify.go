// Package notify carries transient user-facing messages. Handlers report
// success or failure through an injected Notifier rather than printing
// directly, so command code stays testable and the channel stays swappable.
package notify

import (
	"fmt"
	"io"
)

// Notifier surfaces one-shot messages to the user.
type Notifier interface {
	Successf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Writer prints notifications as plain lines, errors prefixed.
type Writer struct {
	Out io.Writer
	Err io.Writer
}

func (w *Writer) Successf(format string, args ...any) {
	fmt.Fprintf(w.Out, format+"\n", args...)
}

func (w *Writer) Errorf(format string, args ...any) {
	fmt.Fprintf(w.Err, "Error: "+format+"\n", args...)
}

// Capture records notifications for assertions in tests.
type Capture struct {
	Successes []string
	Errors    []string
}

func (c *Capture) Successf(format string, args ...any) {
	c.Successes = append(c.Successes, fmt.Sprintf(format, args...))
}

func (c *Capture) Errorf(format string, args ...any) {
	c.Errors = append(c.Errors, fmt.Sprintf(format, args...))
}

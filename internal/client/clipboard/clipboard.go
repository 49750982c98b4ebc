// Package clipboard copies memo bodies to the system clipboard, falling back
// to an OSC 52 terminal escape sequence when no native clipboard exists
// (headless boxes, SSH sessions).
package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Test seams.
var (
	writeNative = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Method tells which path a copy took.
type Method string

const (
	MethodNative Method = "native"
	MethodOSC52  Method = "osc52"
)

// Clipboard tries the native clipboard first and the terminal second.
type Clipboard struct {
	term io.Writer
	// LastMethod is the path used by the most recent successful Copy.
	LastMethod Method
}

// New returns a Clipboard writing escape sequences to term, or to stderr
// when term is nil.
func New(term io.Writer) *Clipboard {
	if term == nil {
		term = os.Stderr
	}
	return &Clipboard{term: term}
}

func (c *Clipboard) Copy(text string) error {
	if !unsupported() {
		if err := writeNative(text); err == nil {
			c.LastMethod = MethodNative
			return nil
		}
	}

	if _, err := osc52.New(text).WriteTo(c.term); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	c.LastMethod = MethodOSC52
	return nil
}

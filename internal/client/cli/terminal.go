package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// terminal implements the ui collaborators (Prompter, Confirmer, Notifier)
// on top of the REPL reader and output.
type terminal struct {
	reader *bufio.Reader
	out    io.Writer
}

func newTerminal(reader *bufio.Reader, out io.Writer) *terminal {
	return &terminal{reader: reader, out: out}
}

// Prompt reads a code without echo when stdin is a terminal. An empty answer
// or a read error counts as cancel.
func (t *terminal) Prompt(message string) (string, bool) {
	var (
		answer string
		err    error
	)
	if isTerminal(int(os.Stdin.Fd())) {
		var b []byte
		b, err = getPassword(t.out, message)
		answer = string(b)
	} else {
		answer, err = getSimpleText(t.reader, message, t.out)
	}
	answer = strings.TrimSpace(answer)
	if err != nil || answer == "" {
		return "", false
	}
	return answer, true
}

func (t *terminal) Confirm(message string) bool {
	ok, err := GetConfirmation(t.reader, message, t.out)
	return err == nil && ok
}

func (t *terminal) Toast(message string) {
	fmt.Fprintln(t.out, toastStyle.Render(message))
}

func (t *terminal) Alert(message string) {
	fmt.Fprintln(t.out, alertStyle.Render(message))
}

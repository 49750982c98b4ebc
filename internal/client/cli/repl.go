package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	NextPage(ctx context.Context) error
	PreviousPage(ctx context.Context) error
	GoToPage(ctx context.Context, arg string) error
	Filter(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	Unlock(ctx context.Context, arg string) error
	Copy(ctx context.Context, arg string) error
	Summarize(ctx context.Context, arg string) error
	Login(ctx context.Context) error
	Code(ctx context.Context, code string) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

const helpText = `Available commands:
  (l)ist             show the current page
  next | prev        move between pages
  page N             jump to page N
  filter [CATEGORY]  show one category, or all without an argument
  categories         list categories in use
  add                create a memo
  edit ID            edit a memo
  delete ID          delete a memo
  unlock ID          reveal a locked memo
  copy ID            copy a memo body to the clipboard
  summarize ID       summarize a memo
  login | code CODE  sign in with GitHub
  whoami | logout
  exit | quit`

// runREPL starts a simple read–eval–print loop for the memo CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands that need an argument print their
// usage when it is missing. The loop exits on EOF, on context cancellation
// or when the user types "exit" or "quit".
//
// Lines are read from the same reader the commands prompt from, so prompts
// inside a command never lose buffered input.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("memo%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		withArg := func(usage string, fn func(context.Context, string) error) {
			if len(args) == 0 {
				printlnFn("Usage:", usage)
				return
			}
			_ = fn(ctx, args[0])
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "next":
			_ = a.NextPage(ctx)

		case "prev":
			_ = a.PreviousPage(ctx)

		case "page":
			withArg("page N", a.GoToPage)

		case "filter":
			_ = a.Filter(ctx, args)

		case "categories":
			_ = a.Categories(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			withArg("edit ID", a.Edit)

		case "delete":
			withArg("delete ID", a.Delete)

		case "unlock":
			withArg("unlock ID", a.Unlock)

		case "copy":
			withArg("copy ID", a.Copy)

		case "summarize":
			withArg("summarize ID", a.Summarize)

		case "login":
			_ = a.Login(ctx)

		case "code":
			withArg("code CODE", a.Code)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

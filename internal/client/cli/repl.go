package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Users(ctx context.Context) error
	Sort(ctx context.Context, args []string) error
	ClearSort(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	ClearFilter(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	PageSize(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error
	ResetView(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the userdir client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help: show available commands
//	  - login: authenticate
//	  - exit | quit: leave the program
//
//	Logged in:
//	  - users: show the user table
//	  - sort <col> [asc|desc]: order rows by a column
//	  - nosort: drop the ordering, back to fetch order
//	  - filter <text>: keep rows containing <text> (no arg clears)
//	  - nofilter: clear the filter
//	  - page <n>: jump to page n
//	  - size <n>: change the page size
//	  - move <col> left|right: shift a column in the layout
//	  - reset: restore the default view
//	  - theme: toggle light/dark
//	  - logout: log out
//	  - exit | quit: leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("userdir %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: users, sort, nosort, filter, nofilter, page, size, move, reset, theme, logout, exit")
			} else {
				printlnFn("Available commands: login, theme, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "u", "users":
			_ = a.Users(ctx)

		case "sort":
			_ = a.Sort(ctx, args)

		case "nosort":
			_ = a.ClearSort(ctx)

		case "filter":
			_ = a.Filter(ctx, args)

		case "nofilter":
			_ = a.ClearFilter(ctx)

		case "page":
			_ = a.Page(ctx, args)

		case "size":
			_ = a.PageSize(ctx, args)

		case "move":
			_ = a.Move(ctx, args)

		case "reset":
			_ = a.ResetView(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

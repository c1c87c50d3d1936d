package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	Add(ctx context.Context) error
	Get(ctx context.Context) error
	Update(ctx context.Context) error
	List(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the PassKeeper CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Commands (numeric shortcuts mirror the menu the prompt prints):
//
//   - 1 | add      — add a password entry (generated or typed)
//   - 2 | get      — look an entry up and copy the password to the clipboard
//   - 3 | update   — change the username or password of an entry
//   - 4 | list     — list service and username for every entry
//   - help         — show available commands
//   - exit | quit  — leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	printMenu()

	for {
		printlnFn("pk> ")
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printMenu()

		case "1", "add":
			_ = a.Add(ctx)

		case "2", "get":
			_ = a.Get(ctx)

		case "3", "update":
			_ = a.Update(ctx)

		case "4", "l", "list":
			_ = a.List(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func printMenu() {
	printlnFn("Commands:")
	printlnFn("[1] -> add password")
	printlnFn("[2] -> get password")
	printlnFn("[3] -> update service")
	printlnFn("[4] -> list services")
	printlnFn("exit -> quit")
}

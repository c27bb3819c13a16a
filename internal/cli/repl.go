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

var errUnknownCommand = errors.New("unknown command")

const helpText = "Available commands: list, get <key>, find <field> <text>, put <json>, rm <key>, exit"

// maxLine bounds a single REPL line; put carries whole documents.
const maxLine = 1 << 20

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Get(ctx context.Context, key string) error
	Find(ctx context.Context, field, text string) error
	Put(ctx context.Context, doc string) error
	Remove(ctx context.Context, key string) error
}

func newScanner(in io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return sc
}

// dispatch runs one command. rest is everything after the command word.
// done reports that the user asked to leave.
func dispatch(ctx context.Context, a execIface, cmd, rest string) (done bool, err error) {
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help":
		printlnFn(helpText)

	case "l", "list":
		return false, a.List(ctx)

	case "get":
		if rest == "" {
			return false, errors.New("usage: get <key>")
		}
		return false, a.Get(ctx, rest)

	case "find":
		field, text := splitArgs(rest)
		if field == "" {
			return false, errors.New("usage: find <field> <text>")
		}
		return false, a.Find(ctx, field, text)

	case "put":
		if rest == "" {
			return false, errors.New("usage: put <json>")
		}
		return false, a.Put(ctx, rest)

	case "rm":
		if rest == "" {
			return false, errors.New("usage: rm <key>")
		}
		return false, a.Remove(ctx, rest)

	case "exit", "quit":
		return true, nil

	default:
		return false, fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
	return false, nil
}

// runREPL reads commands line by line from scanner and dispatches them to a.
// Errors are printed and the loop continues. The loop exits on EOF or when
// the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("bk> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")

		done, err := dispatch(ctx, a, cmd, rest)
		if err != nil {
			printlnFn("Error:", err)
		}
		if done {
			printlnFn("Bye!")
			return
		}
	}
}

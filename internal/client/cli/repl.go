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
// Every command receives the words typed after its name.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	isAdmin(ctx context.Context) bool

	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Whoami(ctx context.Context, args []string) error

	Feed(ctx context.Context, args []string) error
	Doubts(ctx context.Context, args []string) error
	Doubt(ctx context.Context, args []string) error
	Ask(ctx context.Context, args []string) error
	Answer(ctx context.Context, args []string) error
	EditAnswer(ctx context.Context, args []string) error
	DeleteAnswer(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Upvote(ctx context.Context, args []string) error

	Space(ctx context.Context, args []string) error
	Post(ctx context.Context, args []string) error

	Profile(ctx context.Context, args []string) error
	Mentors(ctx context.Context, args []string) error
	Passwd(ctx context.Context, args []string) error

	Admin(ctx context.Context, args []string) error
	PendingMentors(ctx context.Context, args []string) error
	Approve(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	Ban(ctx context.Context, args []string) error
	Unban(ctx context.Context, args []string) error
	Activity(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: register, login, help, exit"
	helpUser      = "Available commands: feed, doubts [page], doubt <id>, ask, answer <doubtId>, " +
		"edit-answer <answerId>, delete-answer <answerId>, comment <doubtId> [answerId], upvote <answerId>, " +
		"space [page], post, profile [userId], mentors [page], passwd, whoami, logout, help, exit"
	helpAdmin = "Admin commands: admin, mentors-pending, approve <id>, reject <id>, users [all|junior|mentor], " +
		"ban <id>, unban <id>, activity [page] [type], rm <doubt|answer|comment|post> <id>"
)

// readLine reads one line, giving up when ctx is done so an interrupt does
// not wait for Enter. An abandoned read stays blocked until input arrives or
// the process exits.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- result{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// runREPL starts a simple read–eval–print loop for the CodeShack CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens. Unknown commands
// are reported back to the user. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("codeshack %s> ", statusFn()))
		line, err := readLine(ctx, reader)
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn(ctx):
				printlnFn(helpAnonymous)
			case a.isAdmin(ctx):
				printlnFn(helpUser)
				printlnFn(helpAdmin)
			default:
				printlnFn(helpUser)
			}

		case "register":
			_ = a.Register(ctx, args)
		case "login":
			_ = a.Login(ctx, args)
		case "logout":
			_ = a.Logout(ctx, args)
		case "whoami":
			_ = a.Whoami(ctx, args)

		case "feed", "home":
			_ = a.Feed(ctx, args)
		case "doubts", "l":
			_ = a.Doubts(ctx, args)
		case "doubt", "show":
			_ = a.Doubt(ctx, args)
		case "ask":
			_ = a.Ask(ctx, args)
		case "answer":
			_ = a.Answer(ctx, args)
		case "edit-answer":
			_ = a.EditAnswer(ctx, args)
		case "delete-answer":
			_ = a.DeleteAnswer(ctx, args)
		case "comment":
			_ = a.Comment(ctx, args)
		case "upvote":
			_ = a.Upvote(ctx, args)

		case "space":
			_ = a.Space(ctx, args)
		case "post":
			_ = a.Post(ctx, args)

		case "profile":
			_ = a.Profile(ctx, args)
		case "mentors":
			_ = a.Mentors(ctx, args)
		case "passwd":
			_ = a.Passwd(ctx, args)

		case "admin":
			_ = a.Admin(ctx, args)
		case "mentors-pending":
			_ = a.PendingMentors(ctx, args)
		case "approve":
			_ = a.Approve(ctx, args)
		case "reject":
			_ = a.Reject(ctx, args)
		case "users":
			_ = a.Users(ctx, args)
		case "ban":
			_ = a.Ban(ctx, args)
		case "unban":
			_ = a.Unban(ctx, args)
		case "activity":
			_ = a.Activity(ctx, args)
		case "rm":
			_ = a.Remove(ctx, args)

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

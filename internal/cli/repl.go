package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Reflect(ctx context.Context, args []string) error
	Reflections(ctx context.Context) error
	Assignments(ctx context.Context) error
	SetStatus(ctx context.Context, args []string) error
	Roster(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit" or "quit".
//
// Commands
//
//	Not logged in:
//	  help                 show available commands
//	  register             create an account
//	  login                authenticate
//	  exit | quit          leave the program
//
//	Logged in:
//	  help                 show available commands
//	  dashboard            progress summary
//	  reflect <week>       submit the reflection for a week (1-3)
//	  reflections          list submitted reflections
//	  assignments          list assignments with their statuses
//	  status <n> <status>  set the status of assignment n
//	  whoami               show the logged-in account
//	  roster               list registered accounts (instructors)
//	  logout               end the session
//	  exit | quit          leave the program
//
// Command errors are reported to the user and the loop continues; nothing
// a command does ends the process.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("portal %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, reflect <week>, reflections, assignments, status <n> <status>, whoami, roster, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "d", "dashboard":
			cmdErr = a.Dashboard(ctx)

		case "reflect":
			cmdErr = a.Reflect(ctx, args)

		case "reflections":
			cmdErr = a.Reflections(ctx)

		case "a", "assignments":
			cmdErr = a.Assignments(ctx)

		case "status":
			cmdErr = a.SetStatus(ctx, args)

		case "roster":
			cmdErr = a.Roster(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmdErr))
		}
	}
}

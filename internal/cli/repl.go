package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. Tests replace it with a stub.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Touch()
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Show(ctx context.Context, page string) error
	Refresh(ctx context.Context) error
	Submit(ctx context.Context) error
	Resolve(ctx context.Context, arg string) error
	Escalate(ctx context.Context, arg string) error
	Reclassify(ctx context.Context, arg string) error
}

// runREPL reads a line, parses the first token as the command and
// dispatches to a. Unknown commands are reported back. The loop exits on
// EOF or "exit"/"quit".
//
// Every non-empty line counts as user activity and refreshes the
// inactivity clock.
//
// Commands while logged out: help, login, exit.
// Commands while logged in: dashboard, issues, profile, admin, refresh,
// submit, resolve <id>, escalate <id>, reclassify <id>, logout, exit.
//
// Handler errors are not re-reported here; handlers surface their own
// outcomes through the notification surface.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("campusmind %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		a.Touch()

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, issues, profile, admin, refresh, submit, resolve <id>, escalate <id>, reclassify <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "dashboard", "issues", "profile", "admin":
			_ = a.Show(ctx, cmd)

		case "refresh":
			_ = a.Refresh(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "resolve":
			_ = a.Resolve(ctx, arg)

		case "escalate":
			_ = a.Escalate(ctx, arg)

		case "reclassify":
			_ = a.Reclassify(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

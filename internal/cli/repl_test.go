package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusmind/client/internal/gateway"
)

// fakeExec records every command the REPL dispatches.
type fakeExec struct {
	loggedIn bool
	touches  int
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Touch()           { f.touches++ }

func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	return nil
}

func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	return nil
}

func (f *fakeExec) Show(_ context.Context, page string) error {
	f.calls = append(f.calls, "show "+page)
	return nil
}

func (f *fakeExec) Refresh(context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}

func (f *fakeExec) Submit(context.Context) error {
	f.calls = append(f.calls, "submit")
	return nil
}

func (f *fakeExec) Resolve(_ context.Context, arg string) error {
	f.calls = append(f.calls, "resolve "+arg)
	return nil
}

func (f *fakeExec) Escalate(_ context.Context, arg string) error {
	f.calls = append(f.calls, "escalate "+arg)
	return nil
}

func (f *fakeExec) Reclassify(_ context.Context, arg string) error {
	f.calls = append(f.calls, "reclassify "+arg)
	return nil
}

func runScript(t *testing.T, exec *fakeExec, script string) []string {
	t.Helper()

	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, fmt.Sprintln(a...))
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
	return printed
}

func TestREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(t, exec, strings.Join([]string{
		"login",
		"dashboard",
		"issues",
		"profile",
		"admin",
		"refresh",
		"submit",
		"resolve 42",
		"escalate 7",
		"reclassify 7",
		"logout",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"login",
		"show dashboard",
		"show issues",
		"show profile",
		"show admin",
		"refresh",
		"submit",
		"resolve 42",
		"escalate 7",
		"reclassify 7",
		"logout",
	}, exec.calls)
}

func TestREPL_EveryCommandCountsAsActivity(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(t, exec, "dashboard\nhelp\nnonsense\nexit")
	assert.Equal(t, 4, exec.touches)
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "\n   \nexit")
	assert.Empty(t, exec.calls)
	assert.Zero(t, exec.touches, "blank input is not user activity")
}

func TestREPL_UnknownCommand(t *testing.T) {
	exec := &fakeExec{}
	printed := runScript(t, exec, "frobnicate\nexit")

	assert.Empty(t, exec.calls)
	joined := strings.Join(printed, "")
	assert.Contains(t, joined, "Unknown command: frobnicate")
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	out := strings.Join(runScript(t, &fakeExec{}, "help\nexit"), "")
	assert.Contains(t, out, "login, exit")
	assert.NotContains(t, out, "resolve <id>")

	out = strings.Join(runScript(t, &fakeExec{loggedIn: true}, "help\nexit"), "")
	assert.Contains(t, out, "resolve <id>")
}

func TestREPL_ExitStopsLoop(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "exit\ndashboard")
	assert.Empty(t, exec.calls, "nothing runs after exit")
}

func TestLoginErrorMessage(t *testing.T) {
	base := "http://127.0.0.1:8000"
	hint := " Please check your credentials and ensure the backend is running."

	msg := loginErrorMessage(gateway.ErrUnreachable, base)
	assert.Equal(t, "Cannot connect to backend. Make sure the server is running on "+base+hint, msg)

	msg = loginErrorMessage(&gateway.StatusError{Status: 401, Detail: "Invalid credentials"}, base)
	assert.Equal(t, "Invalid credentials"+hint, msg)
}

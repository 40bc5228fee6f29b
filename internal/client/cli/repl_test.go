package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
	lastArgs []string
}

func (s *stubExec) record(name string, args ...string) error {
	s.calls = append(s.calls, name)
	s.lastArgs = args
	return nil
}

func (s *stubExec) isLoggedIn() bool                                { return s.loggedIn }
func (s *stubExec) Login(ctx context.Context) error                 { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error                { return s.record("logout") }
func (s *stubExec) Users(ctx context.Context) error                 { return s.record("users") }
func (s *stubExec) Sort(ctx context.Context, a []string) error      { return s.record("sort", a...) }
func (s *stubExec) ClearSort(ctx context.Context) error             { return s.record("nosort") }
func (s *stubExec) Filter(ctx context.Context, a []string) error    { return s.record("filter", a...) }
func (s *stubExec) ClearFilter(ctx context.Context) error           { return s.record("nofilter") }
func (s *stubExec) Page(ctx context.Context, a []string) error      { return s.record("page", a...) }
func (s *stubExec) PageSize(ctx context.Context, a []string) error  { return s.record("size", a...) }
func (s *stubExec) Move(ctx context.Context, a []string) error      { return s.record("move", a...) }
func (s *stubExec) ResetView(ctx context.Context) error             { return s.record("reset") }
func (s *stubExec) ToggleTheme(ctx context.Context) error           { return s.record("theme") }

func runScript(t *testing.T, exec *stubExec, script string) []string {
	t.Helper()

	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
	return printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{loggedIn: true}

	runScript(t, exec, "users\nsort name desc\npage 2\nmove email left\nexit\n")

	assert.Equal(t, []string{"users", "sort", "page", "move"}, exec.calls)
	assert.Equal(t, []string{"email", "left"}, exec.lastArgs)
}

func TestRunREPL_ClearCommands(t *testing.T) {
	exec := &stubExec{loggedIn: true}

	runScript(t, exec, "sort name desc\nnosort\nfilter bob\nnofilter\nexit\n")

	assert.Equal(t, []string{"sort", "nosort", "filter", "nofilter"}, exec.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	exec := &stubExec{}

	printed := runScript(t, exec, "frobnicate\nexit\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, printed, "Unknown command:")
}

func TestRunREPL_HelpVariesWithLogin(t *testing.T) {
	out := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "login")
	assert.NotContains(t, joined, "logout")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	joined = strings.Join(out, "\n")
	assert.Contains(t, joined, "logout")
	assert.Contains(t, joined, "nosort")
	assert.Contains(t, joined, "nofilter")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "") // no commands, scanner hits EOF immediately
	assert.Empty(t, exec.calls)
}

func TestRunREPL_BlankLinesSkipped(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "\n\n   \nexit\n")
	assert.Empty(t, exec.calls)
}

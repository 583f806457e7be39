package shell

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"testing"

	"tuikit/internal/pty"
)

func evalLine(t *testing.T, e *Evaluator, line string) string {
	t.Helper()
	out, err := e.Process(line, 80)
	if err != nil {
		t.Fatalf("Process(%q): %v", line, err)
	}
	return out
}

func TestEvaluator_Arithmetic(t *testing.T) {
	e := NewEvaluator()
	cases := []struct {
		in, want string
	}{
		{"1+2", "3"},
		{"2*3+4", "10"},
		{"2*(3+4)", "14"},
		{"10/4", "2.5"},
		{"-3+1", "-2"},
		{"1.5e2", "150"},
	}
	for _, c := range cases {
		if got := evalLine(t, e, c.in); got != c.want {
			t.Errorf("%q = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEvaluator_Variables(t *testing.T) {
	e := NewEvaluator()
	if got := evalLine(t, e, "x = 2"); got != "x = 2" {
		t.Errorf("assignment echoed %q", got)
	}
	if got := evalLine(t, e, "y = x * 3 + 1"); got != "y = 7" {
		t.Errorf("assignment echoed %q", got)
	}
	if got := evalLine(t, e, "y - x"); got != "5" {
		t.Errorf("y - x = %q", got)
	}
	vars := evalLine(t, e, "vars")
	if !strings.Contains(vars, "x = 2") || !strings.Contains(vars, "y = 7") {
		t.Errorf("vars output %q", vars)
	}
}

func TestEvaluator_Errors(t *testing.T) {
	e := NewEvaluator()
	for _, in := range []string{"1/0", "nope", "2+", "(1+2", "1 ** 2"} {
		if _, err := e.Process(in, 80); err == nil {
			t.Errorf("Process(%q) succeeded, want error", in)
		}
	}
	if out, err := e.Process("   ", 80); err != nil || out != "" {
		t.Errorf("blank input: %q, %v", out, err)
	}
}

// mockRunner hands back canned output instead of spawning anything.
type mockRunner struct {
	out     string
	err     error
	started *exec.Cmd
	size    pty.Size
}

type nopCloser struct{ io.Reader }

func (nopCloser) Write(p []byte) (int, error) { return len(p), nil }
func (nopCloser) Close() error                { return nil }

func (m *mockRunner) Start(_ context.Context, cmd *exec.Cmd, size pty.Size) (io.ReadWriteCloser, error) {
	m.started = cmd
	m.size = size
	if m.err != nil {
		return nil, m.err
	}
	return nopCloser{bytes.NewReader([]byte(m.out))}, nil
}

func TestPTYProcessor_CapturesOutput(t *testing.T) {
	r := &mockRunner{out: "hello\r\nworld\r\n"}
	p := NewPTYProcessor(r)
	out, err := p.Process("echo hello", 40)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out != "hello\nworld" {
		t.Errorf("output %q, want CRs stripped and trailing newline trimmed", out)
	}
	if r.started == nil {
		t.Fatal("runner never started")
	}
	if got := r.started.Args; len(got) != 3 || got[0] != "sh" || got[1] != "-c" || got[2] != "echo hello" {
		t.Errorf("command args %v", got)
	}
	if r.size.Cols != 40 {
		t.Errorf("pty cols %d, want console width", r.size.Cols)
	}
}

func TestPTYProcessor_StartFailure(t *testing.T) {
	p := NewPTYProcessor(&mockRunner{err: io.ErrClosedPipe})
	if _, err := p.Process("true", 40); err == nil {
		t.Fatal("want error when pty start fails")
	} else if !strings.HasPrefix(err.Error(), "ERROR: ") {
		t.Errorf("error %q not prefixed for console display", err)
	}
}

func TestPTYProcessor_DefaultWidth(t *testing.T) {
	r := &mockRunner{out: ""}
	p := NewPTYProcessor(r)
	if _, err := p.Process("true", 0); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if r.size.Cols != 80 {
		t.Errorf("pty cols %d, want fallback 80", r.size.Cols)
	}
}

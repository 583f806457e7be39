package shell

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
	"time"

	"tuikit/internal/pty"
)

const defaultTimeout = 30 * time.Second

// PTYProcessor runs console commands through `sh -c` on a pseudo terminal
// so child processes see a tty and emit color. Output is captured until EOF
// and returned as ANSI lines with carriage returns stripped.
type PTYProcessor struct {
	runner  pty.Runner
	shell   string
	rows    uint16
	timeout time.Duration
}

func NewPTYProcessor(runner pty.Runner) *PTYProcessor {
	return &PTYProcessor{
		runner:  runner,
		shell:   "sh",
		rows:    24,
		timeout: defaultTimeout,
	}
}

// SetShell overrides the shell binary used to interpret commands.
func (p *PTYProcessor) SetShell(shell string) { p.shell = shell }

// SetTimeout bounds how long a single command may run.
func (p *PTYProcessor) SetTimeout(d time.Duration) { p.timeout = d }

// Process implements widget.Processor. Failures are reported as output
// rather than returned, so a broken command never crashes the UI.
func (p *PTYProcessor) Process(command string, width int) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if width < 1 {
		width = 80
	}
	cmd := exec.CommandContext(ctx, p.shell, "-c", command)
	rwc, err := p.runner.Start(ctx, cmd, pty.Size{Rows: p.rows, Cols: uint16(width)})
	if err != nil {
		return "", fmt.Errorf("ERROR: %v", err)
	}

	out, readErr := io.ReadAll(rwc)
	if err := rwc.Close(); err != nil {
		log.Printf("shell: close pty: %v", err)
	}
	if waitErr := cmd.Wait(); waitErr != nil {
		log.Printf("shell: %q: %v", command, waitErr)
	}
	// A PTY read returns EIO once the child exits and the slave side closes.
	// Anything captured before that is still good output.
	if readErr != nil && len(out) == 0 {
		return "", fmt.Errorf("ERROR: %v", readErr)
	}

	text := strings.ReplaceAll(string(out), "\r", "")
	return strings.TrimRight(text, "\n"), nil
}

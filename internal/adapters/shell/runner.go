// Package shell runs external commands and streams their output to the logger.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner logging command output through logger.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes cmd and waits for it to exit.
// Stdout lines are logged at info level and stderr lines at warn level.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	if cmd.Name == "" {
		return zerr.Wrap(errors.New("empty command"), domain.ErrCommandFailed.Error())
	}

	executable, err := exec.LookPath(cmd.Name)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExecutableNotFound.Error()), "command", cmd.Name)
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // commands come from the fixed provisioning catalog
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)

	// One mutex serialises both writers so interleaved lines stay whole.
	var mu sync.Mutex
	stdout := &logWriter{mu: &mu, emit: r.logger.Info}
	stderr := &logWriter{mu: &mu, emit: r.logger.Warn}
	c.Stdout = stdout
	c.Stderr = stderr

	runErr := c.Run()
	_ = stdout.Close()
	_ = stderr.Close()

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(
			zerr.With(zerr.Wrap(runErr, domain.ErrCommandFailed.Error()), "command", commandLine(cmd)),
			"exit_code", exitCode,
		)
	}

	return nil
}

func commandLine(cmd domain.Command) string {
	return strings.Join(append([]string{cmd.Name}, cmd.Args...), " ")
}

// logWriter splits a byte stream into lines and emits each one.
type logWriter struct {
	mu   *sync.Mutex
	emit func(string)
	buf  []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line without a newline.
func (w *logWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimRight(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}
	w.emit(msg)
}

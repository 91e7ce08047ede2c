// Package gitrepo runs git against a dotfiles bare repository. Every
// invocation carries the --git-dir and --work-tree overrides so git never
// has to discover the repository from the working directory.
package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"dotserve/internal/config"
	"dotserve/internal/logging"
)

// DefaultTimeout bounds a single git invocation so a wedged subprocess
// cannot block the request loop indefinitely.
const DefaultTimeout = 30 * time.Second

// CommandResult is the outcome of one git invocation. A non-zero exit code
// is a normal outcome (e.g. repository not initialized) and is returned
// without error; callers must check ExitCode themselves.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExecError reports that git could not be started at all, as opposed to
// running and exiting non-zero.
type ExecError struct {
	Args []string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to run git %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Runner abstracts git execution so higher layers can be tested without a
// real git binary.
type Runner interface {
	Run(ctx context.Context, args ...string) (CommandResult, error)
}

// ExecRunner runs git as a child process with the repository location fixed
// at construction time.
type ExecRunner struct {
	gitDir   string
	workTree string
	timeout  time.Duration
	logger   *logging.AppLogger
}

// NewExecRunner creates a runner bound to the configured repository location.
func NewExecRunner(cfg *config.Config, logger *logging.AppLogger) *ExecRunner {
	return &ExecRunner{
		gitDir:   cfg.GitDir,
		workTree: cfg.WorkTree,
		timeout:  DefaultTimeout,
		logger:   logger,
	}
}

// Run executes git with the fixed repository overrides followed by args,
// capturing stdout and stderr as text. The context bounds the subprocess;
// on expiry the process is killed and the kill shows up as a non-zero exit.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (CommandResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	full := append([]string{"--git-dir=" + r.gitDir, "--work-tree=" + r.workTree}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.logger.LogPerformance("git "+strings.Join(args, " "), start)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result := CommandResult{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
			r.logger.Debug("git exited non-zero",
				"args", strings.Join(args, " "),
				"exit_code", result.ExitCode,
				"stderr", strings.TrimSpace(result.Stderr),
			)
			return result, nil
		}
		return CommandResult{}, &ExecError{Args: args, Err: err}
	}

	return CommandResult{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

package adapter

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"time"

	m "lanoma.dev/pkg/lanoma/internal/model"
)

const waitDelay = time.Second

// CommandRunnerAdapter abstracts running the document build tool.
type CommandRunnerAdapter interface {
	// RunCommand runs command through the system shell inside workDir.
	// Returns the combined stdout/stderr output and any error; a non-zero
	// exit status is reported as an *exec.ExitError.
	RunCommand(ctx context.Context, workDir m.Path, command string) (output string, err error)
}

// LocalCommandRunnerAdapter provides a concrete implementation using os/exec.
type LocalCommandRunnerAdapter struct{}

// NewLocalCommandRunnerAdapter constructs a LocalCommandRunnerAdapter.
func NewLocalCommandRunnerAdapter() *LocalCommandRunnerAdapter {
	return &LocalCommandRunnerAdapter{}
}

// RunCommand runs command in workDir until it exits or ctx is done. The
// working directory is handed to the child process only, the current
// directory of this process never changes.
func (a *LocalCommandRunnerAdapter) RunCommand(ctx context.Context, workDir m.Path, command string) (string, error) {
	name, args := shellCommand(command)

	// #nosec G204 - the command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = string(workDir)
	// Children of the shell may outlive it and keep the pipes open.
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	return output, err
}

func shellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}

	return "sh", []string{"-c", command}
}

package process

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Command describes one delegated tool invocation.
type Command struct {
	Executable string
	Args       []string
	WorkingDir string
	Env        map[string]string
}

// Executor runs delegated tools (git, pip, the bot's interpreter) as child
// processes. Failures are returned as-is; the setup flow treats every
// delegated failure as fatal and does not retry.
type Executor struct {
	env []string
}

// NewExecutor creates an executor inheriting the current environment.
func NewExecutor() *Executor {
	return &Executor{env: os.Environ()}
}

// Run executes the command to completion, capturing its combined output.
// On failure the output is folded into the returned error so the operator
// sees what the tool printed.
func (e *Executor) Run(ctx context.Context, cmd Command) error {
	execCmd := exec.CommandContext(ctx, cmd.Executable, cmd.Args...)
	execCmd.Dir = cmd.WorkingDir
	execCmd.Env = e.buildEnvironment(cmd.Env)

	var output bytes.Buffer
	execCmd.Stdout = &output
	execCmd.Stderr = &output

	if err := execCmd.Run(); err != nil {
		if output.Len() > 0 {
			return fmt.Errorf("%s failed: %w\n%s", cmd.Executable, err, output.String())
		}
		return fmt.Errorf("%s failed: %w", cmd.Executable, err)
	}
	return nil
}

// RunInteractive executes the command with the operator's own stdio wired
// through. Used for the final handoff to the bot, which owns the terminal
// from that point on.
func (e *Executor) RunInteractive(ctx context.Context, cmd Command) error {
	execCmd := exec.CommandContext(ctx, cmd.Executable, cmd.Args...)
	execCmd.Dir = cmd.WorkingDir
	execCmd.Env = e.buildEnvironment(cmd.Env)
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr

	if err := execCmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Executable, err)
	}
	return nil
}

// buildEnvironment merges command-specific variables over the inherited
// environment.
func (e *Executor) buildEnvironment(extra map[string]string) []string {
	env := append([]string(nil), e.env...)
	for key, value := range extra {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}
	return env
}

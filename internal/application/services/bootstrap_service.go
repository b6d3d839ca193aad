package services

import (
	"context"

	"github.com/invisible-hand/handsetup/internal/core/discovery"
	"github.com/invisible-hand/handsetup/internal/infrastructure/process"
)

// Defaults for the bot checkout. The directory is fixed: the artifact is
// written into it and the bot resolves config.py relative to its own tree.
const (
	DefaultRepoURL     = "https://github.com/invisible-hand/invisible-hand.git"
	DefaultCheckoutDir = "invisible-hand"
)

// Step is one delegated bootstrap action, named for operator-facing
// progress output.
type Step struct {
	Title string
	Run   func(ctx context.Context) error
}

// Runner executes one delegated tool invocation to completion.
type Runner interface {
	Run(ctx context.Context, cmd process.Command) error
	RunInteractive(ctx context.Context, cmd process.Command) error
}

// BootstrapService wraps the delegated boundary calls: fetching the bot
// repository, installing its Python dependencies, and the final handoff.
// Each call is a thin delegation; failures are fatal and carry the tool's
// own diagnostics.
type BootstrapService struct {
	runner      Runner
	repoURL     string
	checkoutDir string
}

// NewBootstrapService wires the delegated steps.
func NewBootstrapService(runner Runner, repoURL, checkoutDir string) *BootstrapService {
	return &BootstrapService{runner: runner, repoURL: repoURL, checkoutDir: checkoutDir}
}

// Fetch clones the bot repository into the checkout directory. An existing
// checkout is left untouched.
func (b *BootstrapService) Fetch(ctx context.Context) error {
	if discovery.Exists(b.checkoutDir) {
		return nil
	}
	return b.runner.Run(ctx, process.Command{
		Executable: "git",
		Args:       []string{"clone", b.repoURL, b.checkoutDir},
	})
}

// InstallDeps installs the bot's Python dependencies inside the checkout.
func (b *BootstrapService) InstallDeps(ctx context.Context) error {
	return b.runner.Run(ctx, process.Command{
		Executable: "python",
		Args:       []string{"-m", "pip", "install", "-r", "requirements.txt"},
		WorkingDir: b.checkoutDir,
	})
}

// Launch hands the terminal over to the bot. It blocks until the bot exits
// and returns the bot's own failure, if any.
func (b *BootstrapService) Launch(ctx context.Context) error {
	return b.runner.RunInteractive(ctx, process.Command{
		Executable: "python",
		Args:       []string{"hand.py"},
		WorkingDir: b.checkoutDir,
	})
}


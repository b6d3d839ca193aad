package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the handsetup command tree.
func NewRootCommand(c *Container, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "handsetup",
		Short: "Bootstrap the invisible-hand bot environment",
		Long: `handsetup prepares a machine to run the invisible-hand game bot.

It locates the game and Tesseract installations on disk, collects the
deployment configuration interactively, writes the bot's config.py, and can
fetch the bot repository, install its dependencies, and launch it.`,
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newInitCommand(c))
	rootCmd.AddCommand(newRunCommand(c))
	rootCmd.AddCommand(newLocateCommand(c))
	rootCmd.AddCommand(newConfigCommand(c))

	return rootCmd
}

// Execute wires the default container and runs the command tree. Errors
// have already been printed by cobra; the process just exits non-zero.
func Execute(ctx context.Context, version string) {
	container, err := NewContainer(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	rootCmd := NewRootCommand(container, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

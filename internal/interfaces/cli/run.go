package cli

import (
	"fmt"

	"github.com/invisible-hand/handsetup/internal/application/services"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command: the original one-shot flow of
// fetch, configure, install, and hand off to the bot. The fetch happens
// before configuration because config.py lives inside the checkout.
func newRunCommand(c *Container) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Configure the bot, prepare its environment, and launch it",
		Long: `Run the full bootstrap flow:

  1. clone the bot repository (skipped if the checkout already exists)
  2. collect the deployment configuration and write config.py
  3. install the bot's Python dependencies
  4. launch the bot

Any failed step aborts the flow with that tool's own diagnostics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			fetch := services.Step{Title: "Fetching the bot repository", Run: c.Bootstrap.Fetch}
			if err := runSteps(ctx, []services.Step{fetch}, c.Out); err != nil {
				return err
			}

			if err := runInit(c, strict); err != nil {
				return err
			}
			fmt.Fprintln(c.Out, "")

			install := services.Step{Title: "Installing Python dependencies", Run: c.Bootstrap.InstallDeps}
			if err := runSteps(ctx, []services.Step{install}, c.Out); err != nil {
				return err
			}

			fmt.Fprintf(c.Out, "%s Environment ready, handing off to the bot\n", successStyle.Render("✓"))
			return c.Bootstrap.Launch(ctx)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Validate collected values before writing")

	return cmd
}

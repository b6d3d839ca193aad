package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInitCommand creates the init command: configuration only, no fetch,
// no launch.
func newInitCommand(c *Container) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Collect deployment configuration and write config.py",
		Long: `Collect the bot's deployment configuration and write config.py.

Path-typed values are auto-discovered from known install locations where
possible; everything else is prompted. The game window title is fixed and
never asked for. A prior config.py is fully replaced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(c, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Validate collected values before writing")

	return cmd
}

func runInit(c *Container, strict bool) error {
	fmt.Fprintln(c.Out, titleStyle.Render("invisible-hand setup"))
	fmt.Fprintln(c.Out, "Answer the prompts to configure the bot for this deployment.")
	fmt.Fprintln(c.Out, "")

	path, err := c.Setup.Run(strict)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.Out, "")
	fmt.Fprintf(c.Out, "%s Configuration saved to %s\n", successStyle.Render("✓"), path)
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command group.
func newConfigCommand(c *Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the written configuration artifact",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current config.py with the password masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := c.Store.Read()
			if err != nil {
				return fmt.Errorf("no configuration found, run 'handsetup init' first: %w", err)
			}
			fmt.Fprint(c.Out, maskPassword(content))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print where config.py is written",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(c.Out, c.Store.Path())
		},
	})

	return configCmd
}

// maskPassword hides the database password line when echoing the artifact.
func maskPassword(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "DB_PASSWORD = ") {
			lines[i] = `DB_PASSWORD = "********"`
		}
	}
	return strings.Join(lines, "\n")
}

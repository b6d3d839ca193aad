package cli

import (
	"fmt"

	"github.com/invisible-hand/handsetup/internal/core/botconfig"
	"github.com/spf13/cobra"
)

// newLocateCommand creates the locate command, a read-only report of what
// discovery would find without writing anything.
func newLocateCommand(c *Container) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Report which external dependencies were found on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range botconfig.Schema() {
				if f.Kind != botconfig.PathLiteral {
					continue
				}

				set, ok := c.Candidates.Lookup(f.Resource)
				if !ok {
					return fmt.Errorf("no candidate set for resource %q", f.Resource)
				}

				if loc := set.Resolve(); loc.Found {
					fmt.Fprintf(c.Out, "%s %s: %s\n", successStyle.Render("✓"), f.Resource, loc.Path)
					continue
				}

				fmt.Fprintf(c.Out, "%s %s: not found, checked:\n", warnStyle.Render("✗"), f.Resource)
				for _, p := range set.Paths {
					fmt.Fprintf(c.Out, "  %s\n", subtleStyle.Render(p))
				}
			}
			return nil
		},
	}
}

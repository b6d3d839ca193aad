package cli

import (
	"fmt"
	"io"

	"github.com/invisible-hand/handsetup/internal/application/services"
	"github.com/invisible-hand/handsetup/internal/core/discovery"
	"github.com/invisible-hand/handsetup/internal/infrastructure/configfile"
	"github.com/invisible-hand/handsetup/internal/infrastructure/process"
	"github.com/invisible-hand/handsetup/internal/interfaces/prompt"
)

// Container holds the dependencies shared by the CLI commands.
type Container struct {
	Setup      *services.SetupService
	Bootstrap  *services.BootstrapService
	Store      *configfile.Store
	Candidates discovery.Table
	Out        io.Writer
}

// NewContainer wires the default dependency graph: terminal prompts over the
// given streams, the compiled-in candidate table, and the fixed bot
// checkout directory.
func NewContainer(in io.Reader, out io.Writer) (*Container, error) {
	table, err := discovery.DefaultTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate table: %w", err)
	}

	store := configfile.NewStore(services.DefaultCheckoutDir)
	prompter := prompt.NewTerminal(in, out)

	return &Container{
		Setup:      services.NewSetupService(prompter, table, store, out),
		Bootstrap:  services.NewBootstrapService(process.NewExecutor(), services.DefaultRepoURL, services.DefaultCheckoutDir),
		Store:      store,
		Candidates: table,
		Out:        out,
	}, nil
}

package cli

import (
	"github.com/danieljhkim/stack-select/internal/cli/services"
	"github.com/danieljhkim/stack-select/internal/cli/setting"
	"github.com/danieljhkim/stack-select/internal/cli/stack"
	"github.com/danieljhkim/stack-select/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global paths instance
	paths *config.Paths
)

// NewRootCmd creates the root command with all subcommands. pathsGetter is
// passed to subcommands so tests can point them at a temporary base dir.
func NewRootCmd(pathsGetter func() *config.Paths) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack-select",
		Short: "Choose the services of a Hadoop stack to install",
		Long: `stack-select: choose the services of a Hadoop stack to install.

Selecting a service updates the services that depend on it (ZooKeeper,
HCatalog, WebHCat), and submitting resolves what the selection still
needs (MapReduce, a distributed file system) before confirming it.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(services.NewServicesCmd(pathsGetter))
	cmd.AddCommand(stack.NewStackCmd())
	cmd.AddCommand(setting.NewSettingCmd(pathsGetter))

	return cmd
}

// Execute runs the root command.
// This is called by main.main().
func Execute() error {
	cobra.OnInitialize(initConfig)
	return NewRootCmd(getPaths).Execute()
}

// initConfig resolves the base directory from STACK_SELECT_HOME or HOME.
func initConfig() {
	paths = config.NewPaths("")
}

// getPaths returns the global paths instance
// This is passed to subcommands as a getter function
func getPaths() *config.Paths {
	if paths == nil {
		initConfig()
	}
	return paths
}

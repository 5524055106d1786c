package setting

import (
	"fmt"

	"github.com/danieljhkim/stack-select/internal/config"
	"github.com/danieljhkim/stack-select/internal/stacks"
	"github.com/danieljhkim/stack-select/internal/util"
	"github.com/spf13/cobra"
)

func newSetCmd(pathsGetter PathsGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configurable user setting",
		Long: `Set a configurable user setting.

Supported keys: stack, catalog, stack-version.
An empty value clears catalog and stack-version, and resets stack to the default.
Note: base-dir is static and cannot be changed via this command.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]
			paths := pathsGetter()

			sm := config.NewSettingsManager(paths)
			settings, err := sm.LoadOrDefault()
			if err != nil {
				return err
			}

			if err := settings.Set(key, value); err != nil {
				return err
			}

			if key == "catalog" && settings.Catalog != "" {
				resolved := paths.ResolveCatalog(settings.Catalog)
				if util.DirExists(resolved) {
					return fmt.Errorf("catalog %s is a directory", resolved)
				}
				if !util.FileExists(resolved) {
					util.Warn(cmd.ErrOrStderr(), "catalog %s does not exist yet", resolved)
				} else if _, err := stacks.LoadFile(resolved); err != nil {
					util.Warn(cmd.ErrOrStderr(), "%v", err)
					return fmt.Errorf("catalog must be a valid stack catalog")
				}
			}

			if err := sm.Save(settings); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s in %s\n", key, sm.Path())
			return nil
		},
	}

	return cmd
}

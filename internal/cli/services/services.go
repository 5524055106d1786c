package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/danieljhkim/stack-select/internal/config"
	"github.com/danieljhkim/stack-select/internal/stacks"
	"github.com/danieljhkim/stack-select/internal/util"
	"github.com/danieljhkim/stack-select/internal/wizard"
	"github.com/spf13/cobra"
)

// PathsGetter is a function that returns the Paths instance
type PathsGetter func() *config.Paths

// options are the stack source and selection changes shared by all
// services subcommands.
type options struct {
	stack         string
	catalog       string
	stackVersion  string
	selectNames   []string
	deselectNames []string
	selectAll     bool
	selectMinimum bool
}

// NewServicesCmd creates the services command with all subcommands
func NewServicesCmd(pathsGetter PathsGetter) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "services",
		Short: "Select services to install and validate the selection",
		Long: `Select services to install from a stack and validate the selection.

Selection changes are applied in this order, each followed by dependency
derivation: --select-all, --select-minimum, --select, --deselect.

The stack comes from --catalog, --stack, or the configured settings
(see 'stack-select setting list').`,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.stack, "stack", "", "Built-in stack name (see 'stack-select stack list')")
	flags.StringVar(&opts.catalog, "catalog", "", "YAML stack catalog file (overrides --stack)")
	flags.StringVar(&opts.stackVersion, "stack-version", "", "Override the stack version used by the dependency rules")
	flags.StringSliceVar(&opts.selectNames, "select", nil, "Services to select (comma-separated)")
	flags.StringSliceVar(&opts.deselectNames, "deselect", nil, "Services to unselect (comma-separated)")
	flags.BoolVar(&opts.selectAll, "select-all", false, "Select every selectable service")
	flags.BoolVar(&opts.selectMinimum, "select-minimum", false, "Unselect every service that is not disabled")

	cmd.AddCommand(newListCmd(pathsGetter, opts))
	cmd.AddCommand(newCheckCmd(pathsGetter, opts))
	cmd.AddCommand(newSubmitCmd(pathsGetter, opts))

	return cmd
}

// loadStep resolves the stack source, builds the session step and applies
// the selection changes from the flags. Notices go to errOut.
func loadStep(paths *config.Paths, opts *options, errOut io.Writer) (*stacks.Stack, *wizard.Step, error) {
	stack, err := resolveStack(paths, opts, errOut)
	if err != nil {
		return nil, nil, err
	}

	version := stack.Version
	if opts.stackVersion != "" {
		version = opts.stackVersion
	} else {
		settings, err := config.NewSettingsManager(paths).LoadOrDefault()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load settings: %w", err)
		}
		if settings.StackVersion != "" {
			version = settings.StackVersion
		}
	}

	step, err := wizard.NewStep(stack.Records(), version)
	if err != nil {
		return nil, nil, fmt.Errorf("stack %s: %w", stack.Name, err)
	}

	if opts.selectAll {
		step.SelectAll()
	}
	if opts.selectMinimum {
		step.SelectMinimum()
	}
	for _, name := range opts.selectNames {
		if err := step.Select(normalizeName(name), true); err != nil {
			return nil, nil, err
		}
	}
	for _, name := range opts.deselectNames {
		if err := step.Select(normalizeName(name), false); err != nil {
			return nil, nil, err
		}
	}

	return stack, step, nil
}

func resolveStack(paths *config.Paths, opts *options, errOut io.Writer) (*stacks.Stack, error) {
	if opts.catalog != "" {
		if opts.stack != "" {
			util.Warn(errOut, "--stack %s ignored; using catalog %s", opts.stack, opts.catalog)
		}
		return stacks.LoadFile(opts.catalog)
	}

	registry := stacks.NewRegistry()
	if opts.stack != "" {
		return registry.Get(opts.stack)
	}

	settings, err := config.NewSettingsManager(paths).LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Catalog != "" {
		catalog := paths.ResolveCatalog(settings.Catalog)
		util.Log(errOut, "Using catalog from settings: %s", catalog)
		return stacks.LoadFile(catalog)
	}
	return registry.Get(settings.Stack)
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

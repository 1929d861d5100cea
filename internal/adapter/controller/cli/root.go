package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/dto"
)

// RootBuilder builds the root CLI command with all subcommands
type RootBuilder struct {
	factory  ServicesFactory
	prompter Prompter
	services Services

	// Version info
	version   string
	buildInfo string
}

// NewRootBuilder creates a new root command builder.
// prompter drives the interactive setup; nil selects the terminal prompter.
func NewRootBuilder(factory ServicesFactory, prompter Prompter, version, buildInfo string) *RootBuilder {
	if prompter == nil {
		prompter = NewPromptuiPrompter()
	}
	return &RootBuilder{
		factory:   factory,
		prompter:  prompter,
		version:   version,
		buildInfo: buildInfo,
	}
}

// Build creates the root command with all subcommands
func (b *RootBuilder) Build() *cobra.Command {
	var opts GlobalOptions

	rootCmd := &cobra.Command{
		Use:   "smartfarm",
		Short: "Smart Home Farming - AI planting plans and garden records",
		Long: `smartfarm plans a home garden with a text generation service
and keeps planting and harvest records for each configured garden.`,
		Version:       b.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Out = cmd.OutOrStdout()
			opts.Err = cmd.ErrOrStderr()
			services, err := b.factory(cmd.Context(), opts)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ Error: %v\n", err)
				return err
			}
			b.services = services
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return b.Close()
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&opts.Home, "home", "", "Home directory (default: $SMARTFARM_HOME or .smartfarm)")
	rootCmd.PersistentFlags().StringVar(&opts.EntryID, "entry", "", "Entry ID (optional when only one entry exists)")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFormat, "output", "o", "cli", "Output format (cli, json)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.Agent, "agent", "", "Text generation agent (gemini, claude, mock)")

	gardenController := NewGardenController(b.current)
	setupController := NewSetupController(b.current, b.prompter)

	// Add subcommands
	rootCmd.AddCommand(
		gardenController.PlanCommand(),
		gardenController.PlantCommand(),
		gardenController.HarvestCommand(),
		gardenController.StatusCommand(),
		gardenController.CareCommand(),
		setupController.SetupCommand(),
		setupController.ReconfigureCommand(),
		setupController.EntriesCommand(),
		setupController.RemoveCommand(),
		setupController.CheckCommand(),
		b.versionCommand(),
	)

	return rootCmd
}

// Close releases the services of the last invocation. Safe to call twice.
func (b *RootBuilder) Close() error {
	if b.services == nil {
		return nil
	}
	err := b.services.Close()
	b.services = nil
	return err
}

func (b *RootBuilder) current() Services {
	return b.services
}

// versionCommand creates the 'version' command
func (b *RootBuilder) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return b.services.Presenter().PresentSuccess("smartfarm version", &dto.VersionResponse{
				Version:   b.version,
				BuildInfo: b.buildInfo,
			})
		},
	}
}

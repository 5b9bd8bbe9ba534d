package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rizzo/internal/app"
	"github.com/firefly-engineering/rizzo/internal/config"
	"github.com/firefly-engineering/rizzo/internal/logging"
)

var (
	configPath string
	verbose    bool
	jsonOutput bool

	// settings is the effective configuration of the running command.
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "rzo",
	Short: "Resolve Vagrant control repo configuration",
	Long: `rzo builds a single effective configuration from a personal config
(~/.rizzo.json) and the .rizzo.json files of each control repository it lists.

The control repository containing the current directory takes precedence
when repo configs are merged. The merged result is checked for duplicate
forwarded host ports and duplicate node ip addresses.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Personal config file (default ~/.rizzo.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, config.FlagVerbose, "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, config.FlagJSONLogs, false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadSettings layers flags over RZO_* variables and points the app at the
// chosen personal config.
func loadSettings(cmd *cobra.Command, args []string) error {
	var explicit []string
	for _, name := range []string{config.FlagVerbose, config.FlagJSONLogs} {
		if cmd.Flags().Changed(name) {
			explicit = append(explicit, name)
		}
	}

	s, err := config.LoadSettings(config.Settings{
		ConfigPath: configPath,
		Verbose:    verbose,
		JSONLogs:   jsonOutput,
		Output:     configOutputDest,
		Format:     configFormat,
	}, explicit...)
	if err != nil {
		return err
	}

	logging.Setup(s.Verbose, s.JSONLogs, cmd.ErrOrStderr())
	logging.UserOut = cmd.OutOrStdout()
	logging.UserErr = cmd.ErrOrStderr()

	app.Default.Paths = s.Paths()
	settings = s

	logging.Debug("settings loaded", "config", s.ConfigPath, "output", s.Output, "format", s.Format)
	return nil
}

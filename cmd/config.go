package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/rizzo/internal/app"
	"github.com/firefly-engineering/rizzo/internal/output"
)

var (
	configOutputDest string
	configFormat     string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the merged configuration",
	Long: `Resolves the personal config and every control repository override
into one document and writes it out.

The destination is STDOUT (default), STDERR, or a file path. JSON is
pretty printed; yaml and toml are also available.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&configOutputDest, "output", "o", "", "Output destination: STDOUT, STDERR or a file path")
	configCmd.Flags().StringVarP(&configFormat, "format", "f", "", "Output format: json, yaml or toml")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	doc, _, err := resolve()
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(settings.Format)
	if err != nil {
		return err
	}

	data, err := output.Encode(doc, format)
	if err != nil {
		return err
	}

	sink := &output.Sink{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		FS:     app.Default.FS,
	}
	if err := sink.Write(settings.Output, data); err != nil {
		return err
	}

	if settings.Output != output.Stdout && settings.Output != output.Stderr {
		logSuccess("Wrote merged config to %s", settings.Output)
	}
	return nil
}

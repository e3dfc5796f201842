package commands

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/printer"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "venue-booking",
	Short: "Fyyur venue and artist booking directory",
	Long: `Lists music venues and artists, lets users search them and book shows
that link an artist to a venue at a start time.

Configuration comes from environment variables, optionally loaded from a
.env file first.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return printer.Error("Could not read env file", err.Error())
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading configuration")
}

// newLogger builds the root logger: JSON in production, colored text
// otherwise.
func newLogger(env, level string) hclog.Logger {
	prod := env == "prod" || env == "production"
	color := hclog.AutoColor
	if prod {
		color = hclog.ColorOff
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "venue-booking",
		Level:      hclog.LevelFromString(level),
		Output:     os.Stderr,
		JSONFormat: prod,
		Color:      color,
	})
}

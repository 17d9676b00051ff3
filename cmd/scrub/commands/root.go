// Package commands implements the CLI commands for scrub.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/scrub/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "scrub",
	Short:   "Clean noisy social-media text for vectorization",
	Version: version.String(),
	Long: `Scrub cleans short-form social-media text (emoji, URLs, HTML
fragments, hashtags and mentions, curly quotes, currency spacing, stray
whitespace) through a configurable pipeline of transformation steps.

Examples:
  # Default pipeline, one document per stdin line
  cat tweets.txt | scrub clean

  # Clean a CSV column with a custom pipeline
  scrub clean -f tweets.csv --csv-column text --pipeline pipeline.yaml

  # List available steps
  scrub steps

  # Report likely misspellings against a word list
  scrub spellcheck -f tweets.txt --dict words.txt`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.scrub.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".scrub")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SCRUB")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

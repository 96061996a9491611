package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:          "smiles",
	Short:        "SMILES parser",
	Long:         "smiles parses SMILES strings into atom/bond graphs and reports their structure.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format: text, json, yaml or toml")
	rootCmd.PersistentFlags().StringP("file", "i", "", "Read SMILES from a .smi file ('-' for stdin)")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject unclosed branches and ring numbers at end of input")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Log parser events to stderr")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix("SMILES")
	viper.AutomaticEnv()
}

// parserLogger returns a stderr debug logger when --debug is set.
func parserLogger() *slog.Logger {
	if !viper.GetBool("debug") {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

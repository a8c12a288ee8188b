package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var opts options

var rootCmd = &cobra.Command{
	Use:   "multipick",
	Short: "Pick several labels from a list with a type-ahead input",
	Long: "multipick shows a text input that suggests candidates by prefix. " +
		"Picked labels become chips; on exit the selection is printed to stdout.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), opts, cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "multipick %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/multipick/config.toml)")

	flags := rootCmd.Flags()
	flags.StringVar(&opts.candidatesFile, "candidates-file", "", "read candidates from a .yaml/.yml list or a text file")
	flags.StringVar(&opts.match, "match", "", "matcher: prefix or fuzzy")
	flags.BoolVar(&opts.watch, "watch", false, "reload the candidates file when it changes")
	flags.BoolVar(&opts.json, "json", false, "print the selection as a JSON array")
	flags.StringVar(&opts.logPath, "log", "multipick.log", "log file")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")

	rootCmd.AddCommand(versionCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

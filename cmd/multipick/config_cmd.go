package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"multipick/internal/config"
	"multipick/internal/eventbus"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		bus := eventbus.New()
		defer bus.Close()
		return initConfig(config.NewConfigServiceWithBus(bus, opts.configPath), forceInit, cmd.OutOrStdout())
	},
}

// initConfig writes DefaultConfig to the service's path. An existing file
// is kept unless force is set.
func initConfig(svc config.ConfigService, force bool, out io.Writer) error {
	path := svc.Path()
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := svc.Save(config.DefaultConfig()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "Wrote %s\n", path)
	return err
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

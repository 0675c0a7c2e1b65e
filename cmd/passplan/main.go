package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/passplan/internal/config"
	"github.com/signalsfoundry/passplan/internal/logging"
)

var (
	logger  logging.Logger
	cfg     config.Config
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "passplan",
	Short: "Satellite pass scheduling and optimization",
	Long:  "passplan scores candidate satellite passes, selects a conflict-free downlink schedule under constraints, and reports metrics and recommendations.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file (if any) and sets up the logger. Called
// by every command before doing real work.
func loadConfig() error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	logger = logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	return nil
}

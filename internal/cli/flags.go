package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// ConfigEnvVar names the environment variable consulted when --config is
// not given.
const ConfigEnvVar = "RCLONEEXPLORER_CONFIG"

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	JSON       bool
}

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(
		&flags.ConfigFile,
		"config",
		"",
		"config file (default $"+ConfigEnvVar+", then ./config.yaml)",
	)
	cmd.PersistentFlags().StringVar(
		&flags.LogLevel,
		"log-level",
		"",
		"log level override: debug, info, warn, error",
	)
	cmd.PersistentFlags().BoolVar(
		&flags.JSON,
		"json",
		false,
		"print results as JSON",
	)
}

// configPath returns the config file to load, or "" to run on defaults.
func (f *GlobalFlags) configPath() string {
	if f.ConfigFile != "" {
		return f.ConfigFile
	}
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}

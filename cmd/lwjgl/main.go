package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:           "lwjgl",
		Short:         "LWJGL dependency helper - emits module coordinates for your build",
		Long:          "lwjgl maps LWJGL modules and presets onto Maven coordinates, adding the natives classifier for the current platform or for every platform.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newResolveCmd(),
		newModulesCmd(),
		newPresetsCmd(),
		newAddonsCmd(),
		newPlatformCmd(),
		newVersionsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		newLogger().Error(err)
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "lwjgl",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newViper binds the command flags and LWJGL_* environment variables.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("LWJGL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

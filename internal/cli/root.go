// Package cli defines the wavesq command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/wavesq/internal/config"
)

var (
	cfgFile  string
	loopFlag bool
	iconFlag string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wavesq [name...]",
	Short: "Play a queue of tracks in the terminal",
	Long: `wavesq plays a queue of named tracks. Names are looked up in the library
index first, then as files under the configured library sources.

Keyboard shortcuts:
  space        Play/Pause
  n / p        Next / previous track
  enter        Play the highlighted track
  d / D        Remove the highlighted track / every track with that name
  J / K        Move the highlighted track down / up
  s            Shuffle the queue
  l            Toggle loop
  x            Clear the queue
  q, Ctrl+C    Quit`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initConfig(cmd)
	},
	RunE:         runTUI,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/wavesq/config.toml)")
	rootCmd.Flags().BoolVarP(&loopFlag, "loop", "l", false, "wrap around at either end of the queue")
	rootCmd.Flags().StringVar(&iconFlag, "icons", "", "icon style: nerd, unicode or none")
}

func initConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("loop") {
		cfg.Loop = loopFlag
	}
	if cmd.Flags().Changed("icons") {
		cfg.Icons = iconFlag
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

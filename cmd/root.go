package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/suren/internal/config"
	"github.com/misterclayt0n/suren/internal/kv"
	"github.com/misterclayt0n/suren/internal/logging"
	"github.com/misterclayt0n/suren/internal/narrator"
	"github.com/misterclayt0n/suren/internal/storage"
	"github.com/misterclayt0n/suren/internal/tracker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	noColor    bool

	cfg *config.Config
	app *tracker.Tracker
)

// Commands carrying this annotation run without opening the store.
const offlineAnnotation = "offline"

var rootCmd = &cobra.Command{
	Use:           "suren",
	Short:         "Track 1RM estimates, heart-rate zones and strength goals",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.Log.File,
			LogToStdout:   cfg.Log.Stdout,
			LogLevel:      cfg.Log.Level,
			LogFormatJSON: cfg.Log.JSON,
		})

		if _, ok := cmd.Annotations[offlineAnnotation]; ok {
			return nil
		}

		store, err := kv.Open(cfg.Store)
		if err != nil {
			return fmt.Errorf("Failed to open %s store: %w", cfg.Store.Backend, err)
		}
		log.Debugf("using %s store", cfg.Store.Backend)

		app = tracker.New(storage.NewStorage(store), narrator.New(nil))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return nil
		}
		if err := app.Storage().Close(); err != nil {
			return fmt.Errorf("Failed to close store: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.toml (default ~/.config/suren/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

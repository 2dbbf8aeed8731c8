package cmd

import (
	"fmt"

	"github.com/misterclayt0n/suren/internal/config"
	"github.com/spf13/cobra"
)

var (
	initBackend string
	initURL     string
	initForce   bool
)

var initSetupCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a config file selecting the storage backend",
	Annotations: map[string]string{offlineAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return fmt.Errorf("Failed to resolve config path: %w", err)
			}
			path = p
		}

		switch initBackend {
		case config.BackendFile, config.BackendMemory, config.BackendRedis:
		case config.BackendLibSQL:
			if initURL == "" {
				return fmt.Errorf("the libsql backend needs --url")
			}
		default:
			return fmt.Errorf("unknown backend %q", initBackend)
		}

		out := config.Default()
		out.Store.Backend = initBackend
		out.Store.URL = initURL
		if err := config.SaveConfig(path, out, initForce); err != nil {
			return fmt.Errorf("Failed to write config: %w", err)
		}
		fmt.Printf("✅ Config written to %s (%s backend)\n", path, initBackend)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
	initSetupCmd.Flags().StringVarP(&initBackend, "backend", "b", config.BackendFile, "Storage backend: file, memory, libsql or redis")
	initSetupCmd.Flags().StringVar(&initURL, "url", "", "libsql connection string")
	initSetupCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/bytecodec/internal/config"
	"github.com/muurk/bytecodec/internal/logging"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// config commands must work even when the file is invalid
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initLogging(); err != nil {
				return err
			}
			if a.format == "" {
				a.format = config.FormatText
			}
			return a.resolveConfigPath()
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, a.configPath, map[string]string{"path": a.configPath})
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateDefaultConfig(a.configPath, force); err != nil {
				return err
			}
			logging.Info("Wrote default config", zap.String("path", a.configPath), zap.Bool("force", force))
			return a.emit(cmd, "Wrote "+a.configPath, map[string]string{"path": a.configPath})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	show := &cobra.Command{
		Use:   "show",
		Short: "Validate and print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := config.LoadRegistryFrom(a.configPath)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(registry)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			return a.emit(cmd, string(data), registry)
		},
	}

	cmd.AddCommand(path, initCmd, show)
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomupdate/config"
)

var (
	// Global flags
	configPath string
	mode       string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pomupdate",
	Short: "Maven POM version extraction and enforcement planner",
	Long: `A CLI tool that scans repositories for Maven pom.xml descriptors, resolves
each plugin's and dependency's effective version (including ${property}
indirection and pluginManagement fallbacks), and computes an update plan
against a desired-version table.

This tool helps keep build plugin and dependency versions consistent by:
- Scanning configured sources (directory trees or git repositories)
- Extracting plugins, plugin dependencies, and project dependencies
- Resolving versions with explicit > pluginManagement > none precedence
- Emitting the minimal set of version changes to reach the desired state`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: search standard locations)")
	rootCmd.PersistentFlags().StringVarP(&mode, "mode", "m", "", "Enforcement mode: literal (skip ${property} versions) or all")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig resolves the config file path and loads it.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file given and %w", err)
		}
		path = found
	}
	return config.Load(path)
}

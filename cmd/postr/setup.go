package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/postr/internal/config"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project bool
	force   bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create postr configuration file",
	Long: `Create a postr configuration file with sensible defaults.

By default, creates a global config at ~/.config/postr/postr.yml.
Use --project to create a project-local config in the current directory.
Values passed with --endpoint and --user-id are written into the file.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
}

func runSetup(cmd *cobra.Command, args []string) error {
	// Determine target path
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	// Check if config already exists
	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := config.Default()
	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint = rootFlags.endpoint
	}
	if cmd.Flags().Changed("user-id") {
		cfg.UserID = rootFlags.userID
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Write config to target location
	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}

	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// Print success message
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Config written to: %s\n\n", targetPath)
	_, _ = fmt.Fprintln(out, "Run 'postr' to write your first post.")

	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/postr/internal/config"
	"github.com/mark3labs/postr/internal/logger"
	"github.com/mark3labs/postr/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀█ █▀█ █▀ ▀█▀ █▀█"
	logoText2 = "█▀▀ █▄█ ▄█  █  █▀▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootFlags struct {
	endpoint string
	userID   int
}

var rootCmd = &cobra.Command{
	Use:   "postr",
	Short: "Write and publish blog posts from the terminal",
	RunE:  runNew,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

postr is a two-page form for writing a blog post: a title, then a body.
Each page validates as you type. Submitting sends the post as JSON to a
posts endpoint; the form resets on success and keeps your text on failure.

Running postr without a subcommand opens the form.`

	rootCmd.PersistentFlags().StringVar(&rootFlags.endpoint, "endpoint", "", "Posts endpoint URL (default: "+config.DefaultEndpoint+")")
	rootCmd.PersistentFlags().IntVar(&rootFlags.userID, "user-id", 0, "Author id sent with every post (default: 1)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(setupCmd)
}

// loadConfig resolves configuration with full precedence:
// CLI flags > ENV vars > project config > global config > defaults.
// It also configures the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint = rootFlags.endpoint
	}
	if cmd.Flags().Changed("user-id") {
		cfg.UserID = rootFlags.userID
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	logger.Debug("Using endpoint %s as user %d", cfg.Endpoint, cfg.UserID)
	return cfg, nil
}

package main

import (
	"fmt"
	"io"

	"github.com/mark3labs/postr/internal/publisher"
	"github.com/mark3labs/postr/internal/tui/postwizard"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Open the blog post form",
	Long: `Open the two-page blog post form.

Page 1 asks for a title, page 2 for the body. Both need at least two
characters. Submit sends the post and shows Success. or Error. above the
form. Press esc on the first page or ctrl+c anywhere to quit.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./postr.yml
Global config: ~/.config/postr/postr.yml`,
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client := publisher.NewClient(cfg.Endpoint, cfg.UserID)

	result, err := postwizard.Run(cmd.Context(), client)
	if err != nil {
		return fmt.Errorf("post form failed: %w", err)
	}

	printSummary(cmd.OutOrStdout(), result)
	return nil
}

// printSummary reports what the session published once the form has closed.
func printSummary(w io.Writer, result *postwizard.Result) {
	for _, r := range result.Receipts {
		_, _ = fmt.Fprintf(w, "Created post %s\n", r.ID)
	}
	if result.Failures > 0 {
		_, _ = fmt.Fprintf(w, "%d submission(s) failed\n", result.Failures)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/postr/internal/post"
	"github.com/mark3labs/postr/internal/publisher"
	"github.com/spf13/cobra"
)

var submitFlags struct {
	title    string
	body     string
	bodyFile string
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Publish a post without the form",
	Long: `Publish a post without opening the form.

The same validation rules apply: title and body are required and need at
least two characters each. Use --body-file - to read the body from stdin.`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitFlags.title, "title", "t", "", "Post title")
	submitCmd.Flags().StringVarP(&submitFlags.body, "body", "b", "", "Post body")
	submitCmd.Flags().StringVarP(&submitFlags.bodyFile, "body-file", "f", "", "Read the body from a file (- for stdin)")
	submitCmd.MarkFlagsMutuallyExclusive("body", "body-file")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	body := submitFlags.body
	if submitFlags.bodyFile != "" {
		body, err = readBody(submitFlags.bodyFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	values := post.Values{Title: submitFlags.title, Body: body}
	client := publisher.NewClient(cfg.Endpoint, cfg.UserID)
	return submitPost(cmd.Context(), cmd.OutOrStdout(), client, values)
}

// errInvalidPost is returned when the values fail validation.
var errInvalidPost = errors.New("invalid post")

type submitter interface {
	Submit(ctx context.Context, v post.Values) (*publisher.Receipt, error)
}

// submitPost validates values, sends them once and prints the assigned id.
func submitPost(ctx context.Context, w io.Writer, s submitter, values post.Values) error {
	if res := post.Validate(values); !res.Valid() {
		for _, f := range post.Fields() {
			if res.Has(f) {
				_, _ = fmt.Fprintf(w, "%s: %s\n", f, res.Message(f))
			}
		}
		return errInvalidPost
	}

	receipt, err := s.Submit(ctx, values)
	if err != nil {
		_, _ = fmt.Fprintln(w, "Error.")
		return err
	}

	_, _ = fmt.Fprintln(w, "Success.")
	_, _ = fmt.Fprintf(w, "Created post %s\n", receipt.ID)
	return nil
}

// readBody loads the body from path, or from stdin when path is "-".
func readBody(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(data), nil
}

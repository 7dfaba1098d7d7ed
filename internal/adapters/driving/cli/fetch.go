package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
	"github.com/custodia-labs/issue-fetcher/internal/logger"
)

// Output formats for the fetch command.
const (
	outputJSON = "json"
	outputText = "text"
)

var fetchOutput string

var fetchCmd = &cobra.Command{
	Use:   "fetch <owner> <repo> <number>",
	Short: "Fetch a single issue",
	Long: `Fetch one issue from the GitHub REST API and print it with its ETag.

Output defaults to a styled summary on a terminal and to JSON otherwise.
The JSON form is identical to the Lambda response.

Examples:
  issue-fetcher fetch octocat Hello-World 1
  issue-fetcher fetch octocat Hello-World 1 --output json | jq .etag`,
	Args: cobra.ExactArgs(3),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "",
		"output format: json or text (default: text on a terminal, json otherwise)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if issueService == nil {
		return errors.New("issue service not configured")
	}

	number, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: issue number %q must be a positive integer", domain.ErrInvalidInput, args[2])
	}

	format, err := resolveOutput(cmd.OutOrStdout(), fetchOutput)
	if err != nil {
		return err
	}

	ctx := logger.WithRequestID(cmd.Context(), uuid.NewString())
	resp, err := issueService.Fetch(ctx, domain.IssueRequest{
		Owner:       args[0],
		Repo:        args[1],
		IssueNumber: number,
	})
	if err != nil {
		return err
	}

	if format == outputJSON {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderIssue(NewStyles(nil), resp))
	return nil
}

// resolveOutput validates the --output flag, choosing by terminal when unset.
func resolveOutput(w io.Writer, flag string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case outputJSON:
		return outputJSON, nil
	case outputText:
		return outputText, nil
	case "":
		if isTerminal(w) {
			return outputText, nil
		}
		return outputJSON, nil
	default:
		return "", fmt.Errorf("%w: output %q (valid: %s, %s)", domain.ErrInvalidInput, flag, outputJSON, outputText)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	return nil
}

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	lambdaadapter "github.com/custodia-labs/issue-fetcher/internal/adapters/driving/lambda"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke [event.json]",
	Short: "Run a Lambda event locally",
	Long: `Run an invocation payload through the Lambda handler and print the response.

The payload is read from the named file, or from stdin when no file is given
or the file is "-". It has the same shape the Lambda runtime delivers:

  {"owner": "octocat", "repo": "Hello-World", "issue_number": 1}

Examples:
  issue-fetcher invoke event.json
  echo '{"owner":"octocat","repo":"Hello-World","issue_number":1}' | issue-fetcher invoke`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInvoke,
}

func init() {
	rootCmd.AddCommand(invokeCmd)
}

func runInvoke(cmd *cobra.Command, args []string) error {
	if issueService == nil {
		return errors.New("issue service not configured")
	}

	payload, err := readPayload(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	out, err := lambdaadapter.NewHandler(issueService).Invoke(cmd.Context(), payload)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, out, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(out)
	}
	fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
	return nil
}

func readPayload(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return data, nil
}

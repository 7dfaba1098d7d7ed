package cli

import (
	"errors"

	"github.com/spf13/cobra"

	lambdaadapter "github.com/custodia-labs/issue-fetcher/internal/adapters/driving/lambda"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Start the AWS Lambda runtime loop",
	Long: `Start serving invocations from the AWS Lambda runtime API.

The binary starts the runtime on its own when AWS_LAMBDA_RUNTIME_API is set,
so this command is only needed for custom bootstraps.`,
	Args: cobra.NoArgs,
	RunE: runLambda,
}

func init() {
	rootCmd.AddCommand(lambdaCmd)
}

func runLambda(cmd *cobra.Command, _ []string) error {
	if issueService == nil {
		return errors.New("issue service not configured")
	}
	if !lambdaadapter.IsLambda() {
		return errors.New(lambdaadapter.RuntimeAPIEnv + " is not set; use 'issue-fetcher invoke' to run events locally")
	}

	lambdaadapter.Start(cmd.Context(), lambdaadapter.NewHandler(issueService))
	return nil
}

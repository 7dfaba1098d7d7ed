// Package cli provides the issue-fetcher command line, built on cobra.
// Commands drive the same services the Lambda handler uses; main injects
// them with SetServices before Execute.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driving"
	"github.com/custodia-labs/issue-fetcher/internal/logger"
)

var (
	version = "dev"

	issueService    driving.IssueService
	settingsService driving.SettingsService

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "issue-fetcher",
	Short: "Fetch GitHub issues together with their ETags",
	Long: `issue-fetcher retrieves a single issue from the GitHub REST API and
returns it with the ETag header GitHub sent, so callers can make conditional
requests later.

It normally runs as an AWS Lambda function. The same fetch is available
locally through the fetch, invoke and mcp commands.

Example:
  issue-fetcher fetch octocat Hello-World 1`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices injects the services the commands drive.
func SetServices(issues driving.IssueService, settings driving.SettingsService) {
	issueService = issues
	settingsService = settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

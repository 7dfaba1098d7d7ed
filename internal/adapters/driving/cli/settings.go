package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issue-fetcher/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the GitHub API endpoint and logging.

Settings resolve in order: environment variables, the config file, defaults.
Each key can be overridden with ISSUE_FETCHER_ plus the key in upper snake
case, e.g. ISSUE_FETCHER_GITHUB_BASE_URL.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting in the config file",
	Long: `Set a setting in the config file.

Available keys:
  github.base_url    - API root (default https://api.github.com/)
  github.user_agent  - User-Agent header (default "Issue Fetcher")
  log.level          - debug, info, warn or error
  log.format         - json or text`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[GitHub]")
	cmd.Printf("  Base URL: %s\n", settings.GitHub.BaseURL)
	cmd.Printf("  User-Agent: %s\n", settings.GitHub.UserAgent)
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Level: %s\n", settings.Log.Level)
	cmd.Printf("  Format: %s\n", settings.Log.Format.Description())
	cmd.Println()

	if path := settingsService.Path(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	}

	envKeys := make([]string, 0, len(settingsService.Keys()))
	for _, key := range settingsService.Keys() {
		envKeys = append(envKeys, services.EnvKey(key))
	}
	cmd.Printf("Environment overrides: %s\n", strings.Join(envKeys, ", "))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

// Package main is the entry point for the issue-fetcher Lambda function and CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/issue-fetcher/internal/adapters/driven/config/file"
	"github.com/custodia-labs/issue-fetcher/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/issue-fetcher/internal/adapters/driving/cli"
	lambdaadapter "github.com/custodia-labs/issue-fetcher/internal/adapters/driving/lambda"
	"github.com/custodia-labs/issue-fetcher/internal/connectors/github"
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driven"
	"github.com/custodia-labs/issue-fetcher/internal/core/services"
	"github.com/custodia-labs/issue-fetcher/internal/logger"
)

// version is set at build time using -ldflags.
var version = "dev"

// configDirEnv overrides the config directory (default ~/.issue-fetcher).
const configDirEnv = "ISSUE_FETCHER_CONFIG_DIR"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inLambda := lambdaadapter.IsLambda()

	configStore, err := newConfigStore(inLambda)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	logger.SetFormat(settings.Log.Format.String())
	logger.SetLevel(settings.Log.Level.String())

	client, err := github.NewClient(nil, github.ConfigFromSettings(settings.GitHub))
	if err != nil {
		return err
	}
	issueService := services.NewIssueService(client)

	if inLambda {
		lambdaadapter.Start(ctx, lambdaadapter.NewHandler(issueService))
		return nil
	}

	cli.SetVersion(version)
	cli.SetServices(issueService, settingsService)
	return cli.Execute(ctx)
}

// newConfigStore returns the TOML file store, or an empty in-memory store
// inside Lambda where the filesystem is read-only and settings come from
// the environment.
func newConfigStore(inLambda bool) (driven.ConfigStore, error) {
	if inLambda {
		return memory.NewConfigStore(), nil
	}
	return file.NewConfigStore(os.Getenv(configDirEnv))
}

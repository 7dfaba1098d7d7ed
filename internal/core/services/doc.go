// Package services implements the driving port interfaces.
// IssueService runs the fetch pipeline against a driven IssueSource;
// SettingsService resolves configuration from the environment and a ConfigStore.
//
// Services perform no I/O themselves; all network and file access sits behind
// driven ports.
package services

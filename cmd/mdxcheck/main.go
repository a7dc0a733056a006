// Package main is the entry point for the mdxcheck CLI.
package main

import (
	"errors"
	"os"

	"github.com/docsmith/mdxcheck/internal/cli"
	"github.com/docsmith/mdxcheck/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/docsmith/mdxcheck/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, cli.ErrIssuesFound):
			return cli.ExitCheckErrors
		case errors.Is(err, cli.ErrStrictWarnings):
			return cli.ExitCheckWarnings
		default:
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
			return cli.ExitInternalError
		}
	}

	return cli.ExitSuccess
}

package cli

import "github.com/docsmith/mdxcheck/pkg/runner"

// Exit codes for mdxcheck.
const (
	// ExitSuccess indicates successful execution with no errors found.
	ExitSuccess = 0

	// ExitCheckErrors indicates the check completed but found errors.
	ExitCheckErrors = 1

	// ExitCheckWarnings indicates the check completed and found warnings
	// while strict mode was enabled.
	ExitCheckWarnings = 2

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
// Warnings and informational issues never affect the exit code unless strict
// is set.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.Errors() > 0 {
		return ExitCheckErrors
	}

	if strict && result.Stats.Warnings() > 0 {
		return ExitCheckWarnings
	}

	return ExitSuccess
}

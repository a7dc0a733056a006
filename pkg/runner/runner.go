package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/docsmith/mdxcheck/internal/logging"
	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/lint"
)

// Runner orchestrates discovery and per-file checking.
//
// Files are processed strictly sequentially; checkers carry no state across
// files, so the per-file loop is the whole concurrency story.
type Runner struct {
	// Engine performs per-file checking.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers the file set for target and checks each file in order.
func (r *Runner) Run(ctx context.Context, opts Options, target string) (*Result, error) {
	logger := logging.FromContext(ctx)

	mode, files := Discover(ctx, opts, target)
	logger.Debug("discovery complete",
		logging.FieldMode, string(mode),
		logging.FieldFiles, len(files),
	)

	result := NewResult(mode)

	for _, path := range files {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		result.accumulate(r.checkOne(ctx, opts, path))
	}

	return result, nil
}

// checkOne reads and checks a single file. A file that cannot be read
// becomes a synthetic error issue rather than aborting the batch.
func (r *Runner) checkOne(ctx context.Context, opts Options, path string) FileOutcome {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileOutcome{
			Path:   path,
			Result: missingFileResult(path),
		}
	}

	fr, err := r.Engine.CheckFile(ctx, path, content, opts.Config)
	if err != nil {
		// Only cancellation reaches here; rule failures are collected
		// inside the file result.
		return FileOutcome{Path: path, Result: fr}
	}

	for id, ruleErr := range fr.RuleErrors {
		logging.FromContext(ctx).Warn("rule failed",
			logging.FieldRule, id,
			logging.FieldPath, path,
			logging.FieldError, ruleErr,
		)
	}

	return FileOutcome{Path: path, Result: fr}
}

// missingFileResult builds the synthetic result for an unreadable file.
func missingFileResult(path string) *lint.FileResult {
	issue := lint.NewIssue("DX000", path, 1, "File not found").
		WithSeverity(config.SeverityError).
		Build()
	issue.RuleName = "missing-file"

	return &lint.FileResult{
		Issues:     []lint.Issue{issue},
		RuleErrors: map[string]error{},
	}
}

// Package cli provides the Cobra command structure for mdxcheck.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsmith/mdxcheck/internal/logging"
	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/lint"
	"github.com/docsmith/mdxcheck/pkg/reporter"
	"github.com/docsmith/mdxcheck/pkg/runner"
)

// ErrIssuesFound is returned when the check finds error-severity issues.
var ErrIssuesFound = errors.New("issues found")

// ErrStrictWarnings is returned when strict mode is enabled and the check
// finds warnings but no errors.
var ErrStrictWarnings = errors.New("warnings found in strict mode")

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type checkFlags struct {
	root       string
	configPath string
	format     string
	color      string
	ignore     []string
	base       string
	strict     bool
	debug      bool
}

// NewRootCommand creates the root mdxcheck command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "mdxcheck [target]",
		Short: "A static checker for MDX documentation",
		Long: `mdxcheck validates MDX documentation files for structural problems:
missing frontmatter, broken heading hierarchy, unlabeled code blocks,
incomplete component attributes, HTML comments, and broken internal links.

With no arguments, mdxcheck checks files changed relative to the base
branch. Pass "all" to check every document under the content root, a
directory to check its contents, or a file path to check a single file.

Examples:
  mdxcheck                       # Check changed files
  mdxcheck all                   # Check every document
  mdxcheck docs/guides           # Check a directory
  mdxcheck docs/quickstart.mdx   # Check a single file
  mdxcheck all --format json     # Machine-readable output for CI
  mdxcheck all --strict          # Warnings fail the check`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", info.Version, info.Commit, info.Date),
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "content root directory (default from config, else \".\")")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif")
	cmd.Flags().StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&flags.base, "base", "", "base branch for changed-file discovery")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as failures for exit code")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, info BuildInfo) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(workDir, flags.configPath)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	// Flags override config file values only when explicitly set.
	if cmd.Flags().Changed("root") {
		cfg.ContentRoot = flags.root
	}
	if cmd.Flags().Changed("base") {
		cfg.BaseBranch = flags.base
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)

	logger.Debug("configuration loaded",
		logging.FieldContentRoot, cfg.ContentRoot,
		logging.FieldBaseBranch, cfg.BaseBranch,
	)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	target := ""
	if len(args) > 0 {
		target = args[0]
	}

	engine := lint.NewEngine(lint.DefaultRegistry)
	checkRunner := runner.New(engine)

	for _, rule := range lint.DefaultRegistry.Rules() {
		logger.Debug("rule registered",
			logging.FieldRule, rule.ID(),
			"name", rule.Name(),
		)
	}

	runOpts := runner.Options{
		ContentRoot: cfg.ContentRoot,
		Extensions:  cfg.EffectiveExtensions(),
		IgnoreGlobs: cfg.Ignore,
		BaseBranch:  cfg.BaseBranch,
		Config:      cfg,
	}

	result, err := checkRunner.Run(ctx, runOpts, target)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       flags.color,
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, flags.strict) {
	case ExitCheckErrors:
		return ErrIssuesFound
	case ExitCheckWarnings:
		return ErrStrictWarnings
	default:
		return nil
	}
}

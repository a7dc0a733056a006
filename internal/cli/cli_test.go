package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith/mdxcheck/internal/cli"
	_ "github.com/docsmith/mdxcheck/pkg/lint/rules" // Register built-in rules
	"github.com/docsmith/mdxcheck/pkg/runner"
)

func testCommand(args ...string) (*bytes.Buffer, *bytes.Buffer, error) {
	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return &stdout, &stderr, err
}

func writeDoc(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRootCommand(t *testing.T) {
	info := cli.BuildInfo{Version: "v", Commit: "c", Date: "d"}
	cmd := cli.NewRootCommand(info)

	require.NotNil(t, cmd)
	assert.Equal(t, "mdxcheck [target]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"root", "config", "format", "color", "ignore", "base", "strict", "debug"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %q should exist", name)
	}
}

func TestRunErrorsProduceFailure(t *testing.T) {
	root := t.TempDir()
	path := writeDoc(t, root, "bad.mdx", "# No frontmatter here\n")

	stdout, _, err := testCommand(path, "--root", root, "--color", "never")
	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, stdout.String(), "Missing frontmatter")
}

func TestRunCleanFileSucceeds(t *testing.T) {
	root := t.TempDir()
	path := writeDoc(t, root, "good.mdx",
		"---\ntitle: Good\ndescription: All fine\n---\n\n# Good\n")

	stdout, _, err := testCommand(path, "--root", root, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No issues found")
}

func TestRunInvalidTargetIsNotFailure(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := testCommand(filepath.Join(root, "nope.mdx"), "--root", root, "--color", "never")
	require.NoError(t, err, "an unusable target reports but does not fail")
	assert.Contains(t, stdout.String(), "neither a document file nor a directory")
}

func TestRunWarningsOnlyDefaultVsStrict(t *testing.T) {
	root := t.TempDir()
	content := "---\ntitle: T\ndescription: D\n---\n\n# T\n\n### Deep\n"
	path := writeDoc(t, root, "warn.mdx", content)

	_, _, err := testCommand(path, "--root", root, "--color", "never")
	assert.NoError(t, err, "warnings alone never fail the run")

	_, _, err = testCommand(path, "--root", root, "--color", "never", "--strict")
	assert.ErrorIs(t, err, cli.ErrStrictWarnings)
}

func TestRunJSONFormat(t *testing.T) {
	root := t.TempDir()
	path := writeDoc(t, root, "bad.mdx", "# No frontmatter\n")

	stdout, _, err := testCommand(path, "--root", root, "--format", "json")
	require.ErrorIs(t, err, cli.ErrIssuesFound)

	var report struct {
		Mode   string `json:"mode"`
		Errors int    `json:"errors"`
		Issues []struct {
			Rule string `json:"rule"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, "file", report.Mode)
	assert.Equal(t, 1, report.Errors)
	require.NotEmpty(t, report.Issues)
	assert.Equal(t, "DX001", report.Issues[0].Rule)
}

func TestRunUnsupportedFormat(t *testing.T) {
	root := t.TempDir()

	_, _, err := testCommand("all", "--root", root, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestRunDirectoryTarget(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "guides")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeDoc(t, sub, "a.mdx", "---\ntitle: A\ndescription: ok\n---\n\n# A\n")
	writeDoc(t, sub, "b.mdx", "---\ntitle: B\ndescription: ok\n---\n\n# B\n")

	stdout, _, err := testCommand(sub, "--root", root, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Mode: path")
	assert.Contains(t, stdout.String(), "Checked 2 files")
}

func TestExitCodeFromResult(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil, false))

	clean := runner.NewResult(runner.ModeAll)
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(clean, false))

	warned := runner.NewResult(runner.ModeAll)
	warned.Stats.IssuesBySeverity["warning"] = 2
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(warned, false))
	assert.Equal(t, cli.ExitCheckWarnings, cli.ExitCodeFromResult(warned, true))

	failed := runner.NewResult(runner.ModeAll)
	failed.Stats.IssuesBySeverity["error"] = 1
	failed.Stats.IssuesBySeverity["warning"] = 5
	assert.Equal(t, cli.ExitCheckErrors, cli.ExitCodeFromResult(failed, false))
	assert.Equal(t, cli.ExitCheckErrors, cli.ExitCodeFromResult(failed, true))
}

package runner

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Mode identifies how the input file set was selected.
type Mode string

const (
	// ModeChanged selects files changed relative to the comparison branch
	// and the working tree.
	ModeChanged Mode = "changed"

	// ModeAll selects every document under the content root.
	ModeAll Mode = "all"

	// ModePath selects every document under an explicit directory.
	ModePath Mode = "path"

	// ModeFile selects a single document file.
	ModeFile Mode = "file"

	// ModeInvalid selects nothing; the argument named no usable target.
	ModeInvalid Mode = "invalid path"
)

// Discover resolves the CLI target argument into a mode and a file set.
//
// Discovery never fails: version-control or filesystem trouble degrades to
// an empty set rather than aborting the run.
func Discover(ctx context.Context, opts Options, target string) (Mode, []string) {
	switch {
	case target == "":
		return ModeChanged, changedFiles(ctx, opts)
	case target == "all":
		return ModeAll, walkDocuments(opts, opts.effectiveRoot())
	default:
		info, err := os.Stat(target)
		if err != nil {
			return ModeInvalid, nil
		}
		if info.IsDir() {
			return ModePath, walkDocuments(opts, target)
		}
		if hasDocExtension(target, opts.effectiveExtensions()) {
			return ModeFile, []string{filepath.Clean(target)}
		}
		return ModeInvalid, nil
	}
}

// changedFiles asks git for files changed against the comparison baseline,
// modified in the working tree, or untracked. Any git failure (including no
// repository at all) yields an empty set.
func changedFiles(ctx context.Context, opts Options) []string {
	root := opts.effectiveRoot()

	seen := make(map[string]struct{})
	var files []string

	// --relative makes diff output relative to the content root rather than
	// the repository root; ls-files is cwd-relative already.
	queries := [][]string{
		{"diff", "--name-only", "--relative", opts.effectiveBase()},
		{"diff", "--name-only", "--relative"},
		{"ls-files", "--others", "--exclude-standard"},
	}

	for _, args := range queries {
		out, err := gitOutput(ctx, root, args...)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(out, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			path := filepath.Join(root, line)
			if !hasDocExtension(path, opts.effectiveExtensions()) {
				continue
			}
			if ignored(opts, path) {
				continue
			}
			if _, err := os.Stat(path); err != nil {
				// Deleted files show up in diffs; nothing to check.
				continue
			}
			if _, ok := seen[path]; !ok {
				seen[path] = struct{}{}
				files = append(files, path)
			}
		}
	}

	slices.Sort(files)
	return files
}

// gitOutput runs a git query in dir and returns its stdout.
func gitOutput(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", err
	}
	return stdout.String(), nil
}

// walkDocuments recursively lists every document file under dir in
// deterministic (lexical walk) order.
func walkDocuments(opts Options, dir string) []string {
	var files []string

	// Walk errors on individual entries degrade to skipping them.
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // Unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasDocExtension(path, opts.effectiveExtensions()) {
			return nil
		}
		if ignored(opts, path) {
			return nil
		}
		files = append(files, path)
		return nil
	})

	return files
}

// ignored reports whether path matches any ignore glob. Patterns match
// against the slash-separated path relative to the content root.
func ignored(opts Options, path string) bool {
	patterns := slices.Clone(opts.IgnoreGlobs)
	if opts.Config != nil {
		patterns = append(patterns, opts.Config.Ignore...)
	}
	if len(patterns) == 0 {
		return false
	}

	rel, err := filepath.Rel(opts.effectiveRoot(), path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			// Invalid pattern - skip this check.
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// hasDocExtension reports whether path carries one of the document
// extensions.
func hasDocExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(extensions, ext)
}

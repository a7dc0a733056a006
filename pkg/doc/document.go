// Package doc provides the Document value shared by all checkers: raw file
// content split into 1-indexed lines, with a precomputed fenced-code mask.
package doc

import "strings"

// fenceMarker opens and closes fenced code blocks.
const fenceMarker = "```"

// Document is the raw text of one file plus its logical path.
// It is immutable once constructed.
type Document struct {
	// Path is the logical file path, used for reporting and link resolution.
	Path string

	// Content is the full raw text of the file.
	Content string

	lines  []string
	fence  []bool // line is a fence marker line
	inside []bool // line is between an opening and closing fence
}

// New builds a Document from raw file content.
//
// The fenced-code mask toggles each time a line begins with ``` (ignoring
// leading whitespace). Nested fences are not supported: a second marker
// always toggles the state, even if the content between markers contains
// another fence-looking string. Fence marker lines themselves are never
// reported as inside a block.
func New(path string, content []byte) *Document {
	d := &Document{
		Path:    path,
		Content: string(content),
	}

	d.lines = splitLines(d.Content)
	d.fence = make([]bool, len(d.lines))
	d.inside = make([]bool, len(d.lines))

	in := false
	for i, line := range d.lines {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), fenceMarker) {
			d.fence[i] = true
			in = !in
			continue
		}
		d.inside[i] = in
	}

	return d
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the content of the 1-indexed line n, without its newline.
// Out-of-range line numbers return the empty string.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}

// Lines returns all lines in order. The returned slice must not be modified.
func (d *Document) Lines() []string {
	return d.lines
}

// IsFence reports whether line n begins with a fence marker.
func (d *Document) IsFence(n int) bool {
	if n < 1 || n > len(d.fence) {
		return false
	}
	return d.fence[n-1]
}

// InFence reports whether line n lies inside a fenced code block.
// Fence marker lines themselves report false.
func (d *Document) InFence(n int) bool {
	if n < 1 || n > len(d.inside) {
		return false
	}
	return d.inside[n-1]
}

// splitLines splits content on newlines without dropping a trailing blank
// line the way strings.Split would materialize one after a final "\n".
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

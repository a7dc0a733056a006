package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"
	FieldRule  = "rule"

	// Run fields.
	FieldMode        = "mode"
	FieldContentRoot = "content_root"
	FieldBaseBranch  = "base_branch"
	FieldFormat      = "format"

	// Statistics fields.
	FieldFilesChecked = "files_checked"
	FieldErrors       = "errors"
	FieldWarnings     = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

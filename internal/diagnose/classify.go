// Package diagnose turns command errors into a category, an exit code and a
// few hints for the user.
package diagnose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"reportrepair/internal/config"
	"reportrepair/internal/report"
)

// Category classifies errors for user guidance.
type Category int

const (
	// CategoryUnknown is the fallback for unclassified errors.
	CategoryUnknown Category = iota

	// CategoryConfig indicates a configuration issue.
	CategoryConfig

	// CategoryFilesystem indicates the report could not be opened or read.
	CategoryFilesystem

	// CategoryInput indicates the report content is unusable.
	CategoryInput

	// CategorySearch indicates no pair reaches the target.
	CategorySearch

	// CategoryInterrupted indicates the run was cancelled.
	CategoryInterrupted
)

var categoryNames = []string{"unknown", "config", "filesystem", "input", "search", "interrupted"}

// String returns the category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Prefix returns the display prefix for this category.
func (c Category) Prefix() string {
	return "[" + strings.ToUpper(c.String()) + "]"
}

// ExitCode is the process exit status for the category. 130 mirrors a shell
// reporting SIGINT.
func (c Category) ExitCode() int {
	switch c {
	case CategoryConfig:
		return 2
	case CategoryFilesystem:
		return 3
	case CategoryInput:
		return 4
	case CategorySearch:
		return 5
	case CategoryInterrupted:
		return 130
	default:
		return 1
	}
}

// ClassifiedError wraps an error with classification and remediation.
type ClassifiedError struct {
	Original    error
	Category    Category
	Summary     string
	Remediation []string
}

// Error implements the error interface.
func (ce *ClassifiedError) Error() string {
	return ce.Original.Error()
}

// Unwrap returns the original error for errors.Is/As compatibility.
func (ce *ClassifiedError) Unwrap() error {
	return ce.Original
}

// Format returns a user-facing message with remediation.
func (ce *ClassifiedError) Format() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", ce.Category.Prefix(), ce.Summary)
	fmt.Fprintf(&sb, "Details: %s\n", ce.Original.Error())

	if len(ce.Remediation) > 0 {
		sb.WriteString("\nSuggested fixes:\n")
		for _, r := range ce.Remediation {
			fmt.Fprintf(&sb, "  - %s\n", r)
		}
	}

	return sb.String()
}

// Classify maps err onto a category. It returns nil for a nil error.
func Classify(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	ce := &ClassifiedError{
		Original: err,
		Category: CategoryUnknown,
		Summary:  "An unexpected error occurred",
	}

	var perr *report.ParseError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		ce.Category = CategoryInterrupted
		ce.Summary = "Run interrupted"

	case errors.Is(err, config.ErrInvalid):
		ce.Category = CategoryConfig
		ce.Summary = "Configuration issue detected"
		ce.Remediation = []string{
			"Check reportrepair.yaml (or the file given with --config)",
			"Check REPORTREPAIR_* environment variables",
		}

	case errors.Is(err, report.ErrFileNotFound):
		ce.Category = CategoryFilesystem
		ce.Summary = "Report file could not be opened"
		ce.Remediation = []string{
			"Check the path, or pass the report as an argument",
			"Set report.path or REPORTREPAIR_INPUT",
		}

	case errors.Is(err, report.ErrRead):
		ce.Category = CategoryFilesystem
		ce.Summary = "Report file could not be read"
		ce.Remediation = []string{"Verify the path is a regular, readable file"}

	case errors.As(err, &perr):
		ce.Category = CategoryInput
		ce.Summary = fmt.Sprintf("Report entry on line %d is not a 32-bit integer", perr.Line)
		ce.Remediation = []string{"Each field must be a whole number between -2147483648 and 2147483647"}

	case errors.Is(err, report.ErrEmptyInput):
		ce.Category = CategoryInput
		ce.Summary = "Report contains no values"
		ce.Remediation = []string{"Add one integer per line"}

	case errors.Is(err, report.ErrNoCandidate):
		ce.Category = CategorySearch
		ce.Summary = "No two entries sum to the target"
		ce.Remediation = []string{
			"Check the target (--target)",
			"Self pairs may be disabled (--no-self-pairs / report.allow_self_pairs)",
		}
	}

	return ce
}

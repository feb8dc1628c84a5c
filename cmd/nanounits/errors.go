package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/nanounits/dimension"
)

// CLIError represents a user-friendly CLI error with context and suggestions
type CLIError struct {
	Operation   string   // The operation that failed (e.g., "evaluate", "compare")
	Cause       string   // The underlying cause (e.g., "unknown dimension")
	Details     string   // Additional technical details
	Suggestions []string // Helpful suggestions for the user
	Underlying  error    // Original error for debugging
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var msg strings.Builder

	// Start with operation context
	if e.Operation != "" {
		msg.WriteString(fmt.Sprintf("Failed to %s", e.Operation))
	} else {
		msg.WriteString("Operation failed")
	}

	// Add the main cause
	if e.Cause != "" {
		msg.WriteString(fmt.Sprintf(": %s", e.Cause))
	}

	// Add technical details if available
	if e.Details != "" {
		msg.WriteString(fmt.Sprintf(" (%s)", e.Details))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		msg.WriteString("\n\nSuggestions:")
		for i, suggestion := range e.Suggestions {
			msg.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return msg.String()
}

// Unwrap returns the underlying error for error chain compatibility
func (e *CLIError) Unwrap() error {
	return e.Underlying
}

// Error constructors for common CLI error scenarios

// NewConfigError creates an error for configuration issues
func NewConfigError(operation, issue string, suggestions ...string) *CLIError {
	return &CLIError{
		Operation:   operation,
		Cause:       fmt.Sprintf("configuration error: %s", issue),
		Suggestions: suggestions,
	}
}

// NewExpressionError creates an error for an expression that cannot be evaluated
func NewExpressionError(operation, expr string, underlying error) *CLIError {
	e := &CLIError{
		Operation:  operation,
		Cause:      fmt.Sprintf("cannot evaluate %q", expr),
		Underlying: underlying,
	}
	if underlying != nil {
		e.Details = underlying.Error()
	}

	var syntaxErr *dimension.SyntaxError
	switch {
	case errors.As(underlying, &syntaxErr):
		e.Cause = fmt.Sprintf("syntax error in %q", expr)
		e.Suggestions = []string{
			"Combine dimensions with '*', '/' and integer powers: \"length / time^2\"",
		}
	case errors.Is(underlying, dimension.ErrAmbiguousSymbol):
		e.Cause = "ambiguous symbol"
		e.Suggestions = []string{"Use the dimension name instead of its symbol"}
	case errors.Is(underlying, dimension.ErrUnknownDimension):
		e.Cause = "unknown dimension"
		e.Suggestions = []string{
			"Run 'nanounits list' to see the available dimensions",
			"Load additional catalogs with --catalog",
		}
	}
	return e
}

// NewCatalogError creates an error for catalog files that cannot be used
func NewCatalogError(operation, path string, underlying error, suggestions ...string) *CLIError {
	cause := "invalid catalog"
	details := ""

	if underlying != nil {
		details = underlying.Error()

		// Provide more user-friendly descriptions for common errors
		errStr := strings.ToLower(underlying.Error())
		switch {
		case strings.Contains(errStr, "no such file"):
			cause = "catalog file not found"
		case strings.Contains(errStr, "permission denied"):
			cause = "insufficient permissions to read catalog"
		case strings.Contains(errStr, "failed to parse"):
			cause = "catalog is not valid YAML or JSON"
		case errors.Is(underlying, dimension.ErrDuplicateName):
			cause = "catalog redeclares an existing dimension"
		}
	}
	if path != "" {
		cause = fmt.Sprintf("%s: %s", path, cause)
	}

	return &CLIError{
		Operation:   operation,
		Cause:       cause,
		Details:     details,
		Suggestions: suggestions,
		Underlying:  underlying,
	}
}

// NewStoreError creates an error for snapshot persistence failures
func NewStoreError(operation string, underlying error, suggestions ...string) *CLIError {
	cause := "snapshot store operation failed"
	details := ""

	if underlying != nil {
		details = underlying.Error()
		if strings.Contains(strings.ToLower(details), "lock") {
			cause = "snapshot file is locked by another process"
		}
	}

	return &CLIError{
		Operation:   operation,
		Cause:       cause,
		Details:     details,
		Suggestions: suggestions,
		Underlying:  underlying,
	}
}

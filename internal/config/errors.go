package config

import "fmt"

// ParseError reports a configuration file that could not be read or decoded.
type ParseError struct {
	Path string
	// Line is the 1-based line of the problem, or 0 if unknown.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a configuration value that is not acceptable.
type ValidationError struct {
	// Field is the offending field, as spelled in the configuration file,
	// such as "paths[1].svg".
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return "validation error: " + e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

package puzzle

import "fmt"

// ParseError reports a malformed input line.
type ParseError struct {
	Line   int    // 1-based line number, 0 if unknown
	Text   string // offending line
	Reason string
	Err    error // underlying conversion error, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := "invalid input"
	if e.Line > 0 {
		msg = fmt.Sprintf("invalid input on line %d", e.Line)
	}
	msg += ": " + e.Reason
	if e.Text != "" {
		msg += fmt.Sprintf(" (%q)", e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Errorf builds a ParseError for the given line without an underlying cause.
func Errorf(line int, text, format string, args ...any) *ParseError {
	return &ParseError{
		Line:   line,
		Text:   text,
		Reason: fmt.Sprintf(format, args...),
	}
}

// Wrap builds a ParseError for the given line around err.
func Wrap(line int, text, reason string, err error) *ParseError {
	return &ParseError{
		Line:   line,
		Text:   text,
		Reason: reason,
		Err:    err,
	}
}

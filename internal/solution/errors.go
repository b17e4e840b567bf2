package solution

import "fmt"

// ParseError is the single error kind for all structural parse failures. It
// pins the failure to a 1-based line and a column range spanning the whole
// offending line.
type ParseError struct {
	Path        string // Source file path, empty for in-memory input
	Line        int    // 1-based physical line number
	StartColumn int    // Always 1
	EndColumn   int    // Length of the offending line + 1
	Message     string

	// Details is reserved for richer diagnostics. Parsing never populates
	// it; consumers may rely on it being empty.
	Details [3]string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
}

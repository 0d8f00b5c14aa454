package tabstaff

import "fmt"

type (
	// FormatError reports a problem with the content of an input tab file:
	// unrecognized symbols, misaligned measure lines, invalid frets, tie
	// mismatches and the like. Line and Col are 1-based when known and 0
	// otherwise.
	FormatError struct {
		Summary string
		Detail  string
		Line    int
		Col     int
	}

	// ConfigError reports malformed or conflicting configuration data. It
	// aborts a run before any parsing happens.
	ConfigError struct {
		Option string
		Reason string
	}
)

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Col > 0:
		return fmt.Sprintf("%v (line %v, column %v): %v", e.Summary, e.Line, e.Col, e.Detail)
	case e.Line > 0:
		return fmt.Sprintf("%v (line %v): %v", e.Summary, e.Line, e.Detail)
	case e.Col > 0:
		return fmt.Sprintf("%v (column %v): %v", e.Summary, e.Col, e.Detail)
	}
	return fmt.Sprintf("%v: %v", e.Summary, e.Detail)
}

func (e *ConfigError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Reason)
	}
	return fmt.Sprintf("invalid configuration option %q: %v", e.Option, e.Reason)
}

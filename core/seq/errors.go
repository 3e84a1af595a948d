package seq

import "fmt"

// FormatError is a malformed query or subject record: a missing field, a
// duplicate query identifier, or a source without records.
type FormatError struct {
	Source string // path or logical source name
	Line   int    // 1-based; 0 when not tied to a line
	Msg    string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

// AlphabetError is a sequence that is empty after normalization.
type AlphabetError struct {
	Source string
	Line   int
	ID     string
}

func (e *AlphabetError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: empty sequence for %q", e.Source, e.Line, e.ID)
	}
	return fmt.Sprintf("%s: empty sequence for %q", e.Source, e.ID)
}

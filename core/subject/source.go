package subject

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// SourceUnavailableError reports a candidate subject source that was skipped.
// It is a notice, not a failure, as long as a later candidate resolves.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("subject source %s unavailable: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// ErrNoSource is returned when none of the candidates exists.
var ErrNoSource = errors.New("no subject source available")

var errStdin = errors.New("stdin cannot be read twice (validation + scan)")

// Resolve picks the first usable path from an ordered candidate list. Every
// skipped candidate is reported in skipped, in order. The choice is made by the
// caller's list alone; nothing is read from the environment.
func Resolve(candidates []string) (path string, skipped []*SourceUnavailableError, err error) {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if c == "-" {
			skipped = append(skipped, &SourceUnavailableError{Path: c, Err: errStdin})
			continue
		}
		fi, serr := os.Stat(c)
		switch {
		case serr != nil:
			skipped = append(skipped, &SourceUnavailableError{Path: c, Err: serr})
		case fi.IsDir():
			skipped = append(skipped, &SourceUnavailableError{Path: c, Err: errors.New("is a directory")})
		default:
			return c, skipped, nil
		}
	}
	if len(skipped) == 0 {
		return "", nil, fmt.Errorf("%w: no candidates given", ErrNoSource)
	}
	return "", skipped, fmt.Errorf("%w: tried %d candidate(s)", ErrNoSource, len(skipped))
}

// internal/pipeline/source.go
package pipeline

import (
	"io"

	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// SubjectSource is the minimal capability the pipeline needs from a corpus:
// a lazy sequence of subjects that ends with io.EOF. Hits are emitted in the
// order subjects are returned.
type SubjectSource interface {
	Next() (seq.Subject, error)
}

// SliceSource serves subjects from memory.
type SliceSource struct {
	list []seq.Subject
	pos  int
}

func NewSliceSource(list []seq.Subject) *SliceSource { return &SliceSource{list: list} }

func (s *SliceSource) Next() (seq.Subject, error) {
	if s.pos >= len(s.list) {
		return seq.Subject{}, io.EOF
	}
	sub := s.list[s.pos]
	s.pos++
	return sub, nil
}

package tmsh

import "strings"

// Sequence is an append-only, ordered list of records.
// The zero value is ready to use.
type Sequence struct {
	records []Record
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Append adds records in order.
func (s *Sequence) Append(records ...Record) {
	s.records = append(s.records, records...)
}

// Records returns a copy of the records.
func (s *Sequence) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Sequence) Len() int {
	return len(s.records)
}

// Count returns how many tmsh commands of the given kind were appended.
// Warnings are echo records and are counted under KindWarning.
func (s *Sequence) Count(kind Kind) int {
	n := 0
	for _, r := range s.records {
		if r.Kind == kind && (r.Op == OpTmsh || kind == KindWarning) {
			n++
		}
	}
	return n
}

// Lines renders every record.
func (s *Sequence) Lines() []string {
	lines := make([]string, 0, len(s.records))
	for _, r := range s.records {
		lines = append(lines, r.Lines()...)
	}
	return lines
}

// String joins the rendered lines with newlines.
func (s *Sequence) String() string {
	return strings.Join(s.Lines(), "\n")
}

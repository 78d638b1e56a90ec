package workflow

// sequencer hands out the strictly increasing sequence numbers for one
// mapping run. It is created per invocation and never shared across calls.
type sequencer struct {
	next int
}

// Next returns the current sequence number and advances the cursor.
func (s *sequencer) Next() int {
	n := s.next
	s.next++

	return n
}

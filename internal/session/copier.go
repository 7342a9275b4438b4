// Package session tracks progress through a chunk sequence: which chunks
// have been handed to the clipboard and which one goes next.
package session

// CopyState is the per-chunk progress flag. Presentation is derived from
// it; nothing else is stored per chunk.
type CopyState int

const (
	Pending CopyState = iota
	Copied
)

// Sequence is the chunk list plus a cursor over it. The cursor ranges
// over [0, len(chunks)]: below the top it points at the next chunk to
// copy, at the top the sequence is exhausted and the next advance wraps.
type Sequence struct {
	chunks []map[string]any
	states []CopyState
	cursor int
}

// New wraps a freshly parsed chunk list. The list is owned by the
// sequence from here on.
func New(chunks []map[string]any) *Sequence {
	return &Sequence{
		chunks: chunks,
		states: make([]CopyState, len(chunks)),
	}
}

// Advance returns the next chunk to copy and marks it consumed. When the
// sequence is exhausted it instead resets every mark and the cursor, and
// returns nil — that turn copies nothing.
func (s *Sequence) Advance() map[string]any {
	if s.cursor >= len(s.chunks) {
		s.Reset()
		return nil
	}
	next := s.chunks[s.cursor]
	s.states[s.cursor] = Copied
	s.cursor++
	return next
}

// Reset clears all consumed marks and rewinds the cursor.
func (s *Sequence) Reset() {
	s.cursor = 0
	for i := range s.states {
		s.states[i] = Pending
	}
}

// Len is the chunk count.
func (s *Sequence) Len() int { return len(s.chunks) }

// Cursor is the index of the next chunk to copy; equal to Len when
// exhausted.
func (s *Sequence) Cursor() int { return s.cursor }

// Exhausted reports whether every chunk has been copied this cycle.
func (s *Sequence) Exhausted() bool { return s.cursor >= len(s.chunks) }

// Chunk returns the chunk at i.
func (s *Sequence) Chunk(i int) map[string]any { return s.chunks[i] }

// State returns the copy state of the chunk at i.
func (s *Sequence) State(i int) CopyState { return s.states[i] }

package parse

import "github.com/ef-ds/deque"

// State is the stream of raw tokens consumed by the Tokenizer. Tokens are
// handed out front to back exactly once.
type State struct {
	pending *deque.Deque
	pos     int
}

// NewState creates a new State holding tokens in their original order
func NewState(tokens []string) *State {
	d := deque.New()
	for _, t := range tokens {
		d.PushBack(t)
	}

	return &State{
		pending: d,
		pos:     -1,
	}
}

// Advance removes and returns the next token. The second result is false
// once the stream is exhausted.
func (s *State) Advance() (string, bool) {
	v, ok := s.pending.PopFront()
	if !ok {
		return "", false
	}
	s.pos++

	return v.(string), true
}

// Peek returns the next token without consuming it
func (s *State) Peek() (string, bool) {
	v, ok := s.pending.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Pos returns the index of the last token handed out by Advance, -1 before the first call
func (s *State) Pos() int {
	return s.pos
}

// Len returns the number of tokens not consumed yet
func (s *State) Len() int {
	return s.pending.Len()
}

// Drain consumes and returns every remaining token
func (s *State) Drain() []string {
	rest := make([]string, 0, s.pending.Len())
	for {
		t, ok := s.Advance()
		if !ok {
			return rest
		}
		rest = append(rest, t)
	}
}

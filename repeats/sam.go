// Package repeats detects repeated and inverted-repeat structure
// between two sequences with a suffix automaton, adapted from the
// teacher's dup_identification tool (its own `SAM`/`analyzeDuplicates`)
// so assemble can flag a candidate variant whose sequence looks like a
// repeat-driven assembly artifact rather than a real event.
package repeats

// state is one node of a suffix automaton: the length of its longest
// represented substring, its suffix link, and its outgoing
// transitions.
type state struct {
	length int
	link   int
	next   map[byte]int
}

func newState(length, link int) *state {
	return &state{length: length, link: link, next: make(map[byte]int)}
}

// suffixAutomaton indexes every substring of one sequence so
// longestMatch can report, in time proportional to the match itself,
// how long a prefix of some other string also occurs somewhere in the
// indexed sequence.
type suffixAutomaton struct {
	last   int
	size   int
	states []*state
}

func buildSuffixAutomaton(seq string) *suffixAutomaton {
	sam := &suffixAutomaton{last: 0, size: 1, states: []*state{newState(0, -1)}}
	for i := 0; i < len(seq); i++ {
		sam.extend(seq[i])
	}
	return sam
}

func (s *suffixAutomaton) extend(c byte) {
	p, cur := s.last, s.size
	s.size++
	s.states = append(s.states, newState(s.states[p].length+1, -1))

	for ; p != -1; p = s.states[p].link {
		if _, ok := s.states[p].next[c]; ok {
			break
		}
		s.states[p].next[c] = cur
	}

	switch {
	case p == -1:
		s.states[cur].link = 0
	default:
		q := s.states[p].next[c]
		if s.states[p].length+1 == s.states[q].length {
			s.states[cur].link = q
		} else {
			clone := s.size
			s.size++
			cloned := newState(s.states[p].length+1, s.states[q].link)
			for k, v := range s.states[q].next {
				cloned.next[k] = v
			}
			s.states = append(s.states, cloned)

			for ; p != -1; p = s.states[p].link {
				next, ok := s.states[p].next[c]
				if !ok || next != q {
					break
				}
				s.states[p].next[c] = clone
			}
			s.states[q].link = clone
			s.states[cur].link = clone
		}
	}
	s.last = cur
}

// longestMatch returns the length of the longest prefix of query[from:]
// that also occurs somewhere in the automaton's indexed sequence.
func (s *suffixAutomaton) longestMatch(query string, from int) int {
	length := 0
	cur := 0
	for i := from; i < len(query); i++ {
		next, ok := s.states[cur].next[query[i]]
		if !ok {
			break
		}
		cur = next
		length++
	}
	return length
}

package infer

// tally accumulates weighted evidence per candidate label. One tally is
// allocated per record/axis call and discarded after the decision.
type tally map[string]int

func (t tally) add(label string, weight int) {
	t[label] += weight
}

// top returns the highest-scoring label, its score, and whether another
// label shares that score. Among equal scores the lexicographically
// smallest label wins, which keeps repeated runs deterministic.
func (t tally) top() (label string, score int, tied bool) {
	for l, s := range t {
		switch {
		case s > score:
			label, score, tied = l, s, false
		case s == score && score > 0:
			tied = true
			if l < label {
				label = l
			}
		}
	}
	return
}

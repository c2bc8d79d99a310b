package game

import "Simon/panel"

// Sequence is the ordered, append-only list of panels chosen so far.
type Sequence struct {
	panels []panel.ID
}

// AppendRandom draws one panel from src and appends it.
func (s *Sequence) AppendRandom(src panel.Source) panel.ID {
	id := panel.Random(src)
	s.panels = append(s.panels, id)
	return id
}

// Len returns the number of panels in the sequence.
func (s Sequence) Len() int {
	return len(s.panels)
}

// At returns the i-th panel (0-indexed).
func (s Sequence) At(i int) panel.ID {
	return s.panels[i]
}

// Panels returns a copy of the sequence in insertion order.
func (s Sequence) Panels() []panel.ID {
	out := make([]panel.ID, len(s.panels))
	copy(out, s.panels)
	return out
}

package game

import (
	"fmt"
	"strings"

	"Simon/panel"
)

// Element is a uniquely addressable region of the host page.
type Element interface {
	ClassName() string
	SetClassName(string)
	SetTextContent(string)
}

// Page is the host page capability the driver is bound to.
type Page interface {
	ElementByID(id string) (Element, bool)
}

// BindingError reports host-page regions that could not be located at
// startup. It is fatal: no game starts.
type BindingError struct {
	Missing []string
}

func (e *BindingError) Error() string {
	if len(e.Missing) == 0 {
		return "bind host page: page unavailable"
	}
	return fmt.Sprintf("bind host page: missing elements %s", strings.Join(e.Missing, ", "))
}

// Board holds the bound panels and the score display.
type Board struct {
	panels [panel.Count]panel.Activator
	score  Element
}

// Bind looks up every region the game needs on page.
func Bind(page Page) (*Board, error) {
	if page == nil {
		return nil, &BindingError{}
	}

	b := &Board{}
	var missing []string
	for _, id := range panel.All {
		el, ok := page.ElementByID(id.ElementID())
		if !ok || el == nil {
			missing = append(missing, id.ElementID())
			continue
		}
		b.panels[id] = panel.NewClassActivator(el)
	}

	score, ok := page.ElementByID(panel.ScoreElementID)
	if !ok || score == nil {
		missing = append(missing, panel.ScoreElementID)
	}
	b.score = score

	if len(missing) > 0 {
		return nil, &BindingError{Missing: missing}
	}
	return b, nil
}

// Panel returns the activator bound to id.
func (b *Board) Panel(id panel.ID) panel.Activator {
	return b.panels[id]
}

// SetScore writes the score display.
func (b *Board) SetScore(n int) {
	b.score.SetTextContent(FormatScore(n))
}

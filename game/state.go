package game

import "Simon/panel"

// State is the playback driver's phase.
type State int

const (
	StateIntro State = iota
	StatePlaying
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	}
	return "unknown"
}

// Listener observes a running game. Calls happen on the driver goroutine.
type Listener interface {
	StateChanged(State)
	PanelActivated(panel.ID)
	RoundFinished(round int, replayed []panel.ID)
}

type nopListener struct{}

func (nopListener) StateChanged(State)            {}
func (nopListener) PanelActivated(panel.ID)       {}
func (nopListener) RoundFinished(int, []panel.ID) {}

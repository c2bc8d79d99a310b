// Package control defines lightweight command messages used by the UI to
// request actions from the application command loop. The command loop
// serializes game starts, stops and panel previews so at most one of them
// drives the panels at a time.
package control

import "Simon/panel"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdStop
	CmdPreview
)

func (c CommandType) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdStop:
		return "stop"
	case CmdPreview:
		return "preview"
	}
	return "unknown"
}

// Command is the message sent from the UI to AppManager.commandLoop. The
// optional Reply channel receives the outcome of the command.
type Command struct {
	Type  CommandType
	Panel panel.ID   // target of CmdPreview
	Reply chan error // optional reply channel
}

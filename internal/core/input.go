// Package core provides the command vocabulary and runtime settings shared by
// every way of playing.
package core

// Action represents a semantic game command, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // w, Up arrow
	ActionLeft         // a, Left arrow
	ActionDown         // s, Down arrow
	ActionRight        // d, Right arrow
	ActionUndo         // u
	ActionQuit         // q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionRight:
		return "Right"
	case ActionUndo:
		return "Undo"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove returns true for the four directional actions.
func (a Action) IsMove() bool {
	switch a {
	case ActionUp, ActionLeft, ActionDown, ActionRight:
		return true
	}
	return false
}

// commands maps single-character commands to actions.
var commands = map[rune]Action{
	'w': ActionUp,
	'a': ActionLeft,
	's': ActionDown,
	'd': ActionRight,
	'u': ActionUndo,
	'q': ActionQuit,
}

// ParseCommand maps a command character to its action.
// Unknown characters map to ActionNone.
func ParseCommand(r rune) Action {
	if a, ok := commands[r]; ok {
		return a
	}
	return ActionNone
}

// CommandHelp is the prompt listing the command characters.
const CommandHelp = "Move (w=up, a=left, s=down, d=right), u=undo, q=quit: "

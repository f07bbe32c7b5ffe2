package core

// Action represents a semantic input intent, abstracted from physical key
// presses and mouse buttons. The session controller works with intents
// rather than raw input.
type Action int

const (
	ActionNone             Action = iota
	ActionThrustStart             // Space, W, Up, mouse press
	ActionThrustEnd               // key release timeout, mouse release
	ActionToggleBot               // B
	ActionSelectPolicy            // 1-4, payload carries the policy number
	ActionToggleHelp              // H, ?
	ActionRestart                 // R
	ActionToggleDevOverlay        // D
	ActionStartDay                // Enter
	ActionStartNight              // N
	ActionCycleDifficulty         // Tab
	ActionToggleMute              // M
	ActionVolumeUp                // +
	ActionVolumeDown              // -
	ActionPause                   // P
	ActionQuit                    // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrustStart:
		return "ThrustStart"
	case ActionThrustEnd:
		return "ThrustEnd"
	case ActionToggleBot:
		return "ToggleBot"
	case ActionSelectPolicy:
		return "SelectPolicy"
	case ActionToggleHelp:
		return "ToggleHelp"
	case ActionRestart:
		return "Restart"
	case ActionToggleDevOverlay:
		return "ToggleDevOverlay"
	case ActionStartDay:
		return "StartDay"
	case ActionStartNight:
		return "StartNight"
	case ActionCycleDifficulty:
		return "CycleDifficulty"
	case ActionToggleMute:
		return "ToggleMute"
	case ActionVolumeUp:
		return "VolumeUp"
	case ActionVolumeDown:
		return "VolumeDown"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is an action together with its optional payload.
type Intent struct {
	Action Action
	Arg    int // policy number for ActionSelectPolicy
}

// Interaction reports whether the intent counts as direct player input for
// idle tracking and demo interruption.
func (i Intent) Interaction() bool {
	switch i.Action {
	case ActionNone, ActionThrustEnd, ActionQuit:
		return false
	}
	return true
}

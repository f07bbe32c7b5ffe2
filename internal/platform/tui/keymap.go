package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyglider/internal/core"
)

// KeyMap defines the game's key bindings.
type KeyMap struct {
	Thrust     key.Binding
	Bot        key.Binding
	Policy     key.Binding
	Help       key.Binding
	Restart    key.Binding
	DevOverlay key.Binding
	StartDay   key.Binding
	StartNight key.Binding
	Difficulty key.Binding
	Mute       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Pause      key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.StartDay, k.Bot, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.StartDay, k.StartNight, k.Restart, k.Pause},
		{k.Bot, k.Policy, k.Difficulty, k.DevOverlay},
		{k.Mute, k.VolumeUp, k.VolumeDown, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust: key.NewBinding(
			key.WithKeys(" ", "w", "up", "k"),
			key.WithHelp("space/w", "thrust"),
		),
		Bot: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle bot"),
		),
		Policy: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "bot policy"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		DevOverlay: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "hitboxes"),
		),
		StartDay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start day"),
		),
		StartNight: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "start night"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "difficulty"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "volume down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea input messages to intents.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an intent. Unbound keys map to
// ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Intent {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.Intent{Action: core.ActionQuit}
	case key.Matches(msg, k.Thrust):
		return core.Intent{Action: core.ActionThrustStart}
	case key.Matches(msg, k.Policy):
		return core.Intent{Action: core.ActionSelectPolicy, Arg: int(msg.String()[0] - '0')}
	case key.Matches(msg, k.Bot):
		return core.Intent{Action: core.ActionToggleBot}
	case key.Matches(msg, k.Help):
		return core.Intent{Action: core.ActionToggleHelp}
	case key.Matches(msg, k.Restart):
		return core.Intent{Action: core.ActionRestart}
	case key.Matches(msg, k.DevOverlay):
		return core.Intent{Action: core.ActionToggleDevOverlay}
	case key.Matches(msg, k.StartDay):
		return core.Intent{Action: core.ActionStartDay}
	case key.Matches(msg, k.StartNight):
		return core.Intent{Action: core.ActionStartNight}
	case key.Matches(msg, k.Difficulty):
		return core.Intent{Action: core.ActionCycleDifficulty}
	case key.Matches(msg, k.Mute):
		return core.Intent{Action: core.ActionToggleMute}
	case key.Matches(msg, k.VolumeUp):
		return core.Intent{Action: core.ActionVolumeUp}
	case key.Matches(msg, k.VolumeDown):
		return core.Intent{Action: core.ActionVolumeDown}
	case key.Matches(msg, k.Pause):
		return core.Intent{Action: core.ActionPause}
	}
	return core.Intent{}
}

// MapMouse translates a mouse message to an intent. Any button press
// starts thrust and its release ends it.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Intent {
	if msg.Button == tea.MouseButtonNone && msg.Action != tea.MouseActionRelease {
		return core.Intent{}
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if tea.MouseEvent(msg).IsWheel() {
			return core.Intent{}
		}
		return core.Intent{Action: core.ActionThrustStart}
	case tea.MouseActionRelease:
		return core.Intent{Action: core.ActionThrustEnd}
	}
	return core.Intent{}
}

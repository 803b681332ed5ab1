package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a canonical game key.
// Returns the key and whether the message is bound at all.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (game.Key, bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return game.KeyQuit, true
	case "w", "up", "k": // vim-style k for up
		return game.KeyUp, true
	case "s", "down", "j": // vim-style j for down
		return game.KeyDown, true
	case "a", "left", "h":
		return game.KeyLeft, true
	case "d", "right", "l":
		return game.KeyRight, true
	}

	return 0, false
}

// IsRestart reports whether the key requests a fresh game.
func (km *KeyMapper) IsRestart(msg tea.KeyMsg) bool {
	return msg.String() == "r"
}

// Package tui provides the Bubble Tea integration for the platformer.
// It bridges terminal input to the simulation loop, renders snapshots to
// a cell buffer and serves the game over SSH.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to physical key codes for
// the simulation loop. This centralizes key bindings and makes them
// testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to the physical code the loop's input
// normalization understands. Returns the code (empty if unbound) and
// whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (code string, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return "", true
	}

	// Game keys pass through as-is; the loop folds aliases onto
	// canonical keys itself.
	switch key {
	case "left", "right", "a", "d", " ", "up", "w", "p", "esc", "r":
		return key, false
	}

	return "", false
}

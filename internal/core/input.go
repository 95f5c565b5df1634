package core

// Key is a canonical game key, abstracted from physical key presses.
// Multiple physical keys (arrows, WASD, space) fold onto one canonical
// identifier each, so the simulation never sees raw key codes.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // A, Left arrow - run left
	KeyRight     // D, Right arrow - run right
	KeyJump      // Space, W, Up arrow - jump
	KeyPause     // P, Escape - toggle pause menu
	KeyReset     // R - restart from level 1
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyJump:
		return "Jump"
	case KeyPause:
		return "Pause"
	case KeyReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// NormalizeKey maps a physical key code (as reported by the input layer)
// to its canonical game key. Unrecognized codes map to KeyNone.
func NormalizeKey(code string) Key {
	switch code {
	case "left", "a":
		return KeyLeft
	case "right", "d":
		return KeyRight
	case " ", "space", "up", "w":
		return KeyJump
	case "p", "esc":
		return KeyPause
	case "r":
		return KeyReset
	}
	return KeyNone
}

// KeySet tracks which canonical keys are currently held down.
// It models held state (key-down until key-up), not per-tick events.
// The owner is responsible for synchronizing access; the simulation loop
// guards its KeySet with the same lock that guards the world.
type KeySet struct {
	pressed map[Key]bool
}

// NewKeySet creates an empty key set.
func NewKeySet() *KeySet {
	return &KeySet{pressed: make(map[Key]bool)}
}

// Press marks a key as held.
func (s *KeySet) Press(k Key) {
	if k == KeyNone {
		return
	}
	s.pressed[k] = true
}

// Release marks a key as no longer held.
func (s *KeySet) Release(k Key) {
	delete(s.pressed, k)
}

// Held returns true if the key is currently held down.
func (s *KeySet) Held(k Key) bool {
	return s.pressed[k]
}

// Clear releases all keys.
func (s *KeySet) Clear() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
}

// Clone creates an independent copy of this key set.
func (s *KeySet) Clone() *KeySet {
	c := NewKeySet()
	for k, v := range s.pressed {
		if v {
			c.pressed[k] = true
		}
	}
	return c
}

package game

// InputState is the held-key state read once per frame.
type InputState struct {
	Left  bool
	Right bool
}

// Direction is a logical paddle direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// ParseKey maps a key name to a direction. Both the legacy ("Left") and the
// modern ("ArrowLeft") names are recognized.
func ParseKey(name string) Direction {
	switch name {
	case "Left", "ArrowLeft":
		return DirLeft
	case "Right", "ArrowRight":
		return DirRight
	default:
		return DirNone
	}
}

// InputHandler tracks which direction keys are held.
// It is written by the event boundary and read by the frame loop.
type InputHandler struct {
	state InputState
}

// KeyDown marks the key as held. It returns false for keys it does not track.
func (h *InputHandler) KeyDown(name string) bool {
	return h.set(ParseKey(name), true)
}

// KeyUp marks the key as released. It returns false for keys it does not track.
func (h *InputHandler) KeyUp(name string) bool {
	return h.set(ParseKey(name), false)
}

// Press sets a direction as held.
func (h *InputHandler) Press(dir Direction) {
	h.set(dir, true)
}

// Release sets a direction as released.
func (h *InputHandler) Release(dir Direction) {
	h.set(dir, false)
}

func (h *InputHandler) set(dir Direction, held bool) bool {
	switch dir {
	case DirLeft:
		h.state.Left = held
	case DirRight:
		h.state.Right = held
	default:
		return false
	}
	return true
}

// State returns the current held-key state.
func (h *InputHandler) State() InputState {
	return h.state
}

// Reset releases every key.
func (h *InputHandler) Reset() {
	h.state = InputState{}
}

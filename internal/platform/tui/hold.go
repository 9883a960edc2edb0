package tui

import "github.com/vovakirdan/arka/internal/game"

// holdTracker turns terminal key presses into held keys.
// Terminals report no key releases, only auto-repeated presses, so a key
// counts as held until no repeat has arrived for a number of frames.
// The first press waits longer to cover the auto-repeat delay.
type holdTracker struct {
	initial int
	repeat  int
	left    int // Frames until release
	right   int
}

func newHoldTracker(repeat int) *holdTracker {
	repeat = max(repeat, 1)
	return &holdTracker{initial: repeat * 3, repeat: repeat}
}

// Press holds dir and releases the opposite direction.
func (h *holdTracker) Press(dir game.Direction, in *game.InputHandler) {
	switch dir {
	case game.DirLeft:
		h.left = h.window(h.left)
		h.right = 0
		in.Release(game.DirRight)
	case game.DirRight:
		h.right = h.window(h.right)
		h.left = 0
		in.Release(game.DirLeft)
	default:
		return
	}
	in.Press(dir)
}

func (h *holdTracker) window(remaining int) int {
	if remaining > 0 {
		return max(remaining, h.repeat)
	}
	return h.initial
}

// Tick counts one frame down and releases expired keys.
func (h *holdTracker) Tick(in *game.InputHandler) {
	if h.left > 0 {
		h.left--
		if h.left == 0 {
			in.Release(game.DirLeft)
		}
	}
	if h.right > 0 {
		h.right--
		if h.right == 0 {
			in.Release(game.DirRight)
		}
	}
}

// Reset releases everything.
func (h *holdTracker) Reset(in *game.InputHandler) {
	h.left, h.right = 0, 0
	in.Reset()
}

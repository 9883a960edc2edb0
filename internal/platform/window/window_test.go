package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/arka/internal/config"
	"github.com/vovakirdan/arka/internal/game"
)

func keysDown(keys ...ebiten.Key) func(ebiten.Key) bool {
	down := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		down[k] = true
	}
	return func(k ebiten.Key) bool { return down[k] }
}

func TestHeldState(t *testing.T) {
	tests := []struct {
		name     string
		down     []ebiten.Key
		expected game.InputState
	}{
		{"none", nil, game.InputState{}},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, game.InputState{Left: true}},
		{"a", []ebiten.Key{ebiten.KeyA}, game.InputState{Left: true}},
		{"d", []ebiten.Key{ebiten.KeyD}, game.InputState{Right: true}},
		{"both directions", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowRight}, game.InputState{Left: true, Right: true}},
		{"both left keys", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, game.InputState{Left: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := heldState(keysDown(tc.down...)); got != tc.expected {
				t.Errorf("heldState = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestReleasingOneOfTwoLeftKeysKeepsLeftHeld(t *testing.T) {
	w, err := New(config.DefaultArkaConfig())
	if err != nil {
		t.Fatal(err)
	}

	w.applyHeld(heldState(keysDown(ebiten.KeyA, ebiten.KeyArrowLeft)))
	w.applyHeld(heldState(keysDown(ebiten.KeyArrowLeft)))
	if w.input.State() != (game.InputState{Left: true}) {
		t.Errorf("state = %+v, expected left still held", w.input.State())
	}

	w.applyHeld(heldState(keysDown()))
	if w.input.State() != (game.InputState{}) {
		t.Errorf("state = %+v, expected released", w.input.State())
	}
}

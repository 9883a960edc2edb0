package audio

import (
	"testing"

	"github.com/vovakirdan/arka/internal/config"
	"github.com/vovakirdan/arka/internal/game"
)

func TestEngineWithoutDevice(t *testing.T) {
	e := NewEngine(config.DefaultArkaConfig().Audio, nil)

	if e.Opened() {
		t.Fatal("engine should not open a device on construction")
	}
	if !e.Music().Loop() || e.Music().Volume() != 0.5 {
		t.Errorf("music loop=%v volume=%v", e.Music().Loop(), e.Music().Volume())
	}
	if e.Music().Len() == 0 {
		t.Error("music should be synthesized")
	}

	e.StartMusic()
	if !e.Music().Playing() {
		t.Error("StartMusic should play the music")
	}

	buf := make([][2]float64, 1000)
	e.Music().Stream(buf)
	e.StopMusic()
	if e.Music().Playing() || e.Music().Position() != 0 {
		t.Errorf("StopMusic should pause and rewind, position %d", e.Music().Position())
	}
}

func TestEngineCues(t *testing.T) {
	e := NewEngine(config.DefaultArkaConfig().Audio, nil)

	for _, cue := range []game.Cue{game.CuePaddle, game.CueBrick, game.CueGameOver} {
		tr := e.Cue(cue)
		if tr == nil || tr.Len() == 0 {
			t.Fatalf("cue %s not synthesized", cue)
		}
		if tr.Loop() {
			t.Errorf("cue %s should not loop", cue)
		}

		e.PlayCue(cue)
		if !tr.Playing() {
			t.Errorf("cue %s should play", cue)
		}
	}
}

func TestEngineDrivesGame(t *testing.T) {
	e := NewEngine(config.DefaultArkaConfig().Audio, nil)
	g, err := game.New(config.DefaultArkaConfig(), game.WithAudio(e))
	if err != nil {
		t.Fatal(err)
	}

	if err := g.StartSession(); err != nil {
		t.Fatal(err)
	}
	if !e.Music().Playing() {
		t.Error("session start should start the music")
	}

	if err := g.EndSession(game.OutcomeLost); err != nil {
		t.Fatal(err)
	}
	if e.Music().Playing() || !e.Cue(game.CueGameOver).Playing() {
		t.Error("session end should stop the music and play the game-over cue")
	}
}

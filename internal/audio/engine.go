package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arka/internal/config"
	"github.com/vovakirdan/arka/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Format is the sample format of every synthesized track.
var Format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Engine owns the music track and one track per cue, mixed into the speaker.
// Without an open device the controls still work and nothing is heard.
type Engine struct {
	music  *Track
	cues   map[game.Cue]*Track
	mixer  *beep.Mixer
	logger *log.Logger
	open   bool
}

// NewEngine synthesizes all tracks. The music loops at cfg.MusicVolume; cues
// play once at cfg.EffectsVolume.
func NewEngine(cfg config.AudioConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		music: NewTrack("music", Format, musicLoop(sampleRate)),
		cues: map[game.Cue]*Track{
			game.CuePaddle:   NewTrack(game.CuePaddle.String(), Format, paddleSound(sampleRate)),
			game.CueBrick:    NewTrack(game.CueBrick.String(), Format, brickSound(sampleRate)),
			game.CueGameOver: NewTrack(game.CueGameOver.String(), Format, gameOverSound(sampleRate)),
		},
		mixer:  &beep.Mixer{},
		logger: logger,
	}

	e.music.SetLoop(true)
	e.music.SetVolume(cfg.MusicVolume)
	e.mixer.Add(e.music)
	for _, cue := range []game.Cue{game.CuePaddle, game.CueBrick, game.CueGameOver} {
		t := e.cues[cue]
		t.SetVolume(cfg.EffectsVolume)
		e.mixer.Add(t)
	}
	return e
}

// Open initializes the speaker and starts the mixer. On failure the engine
// stays usable and silent.
func (e *Engine) Open() error {
	if e.open {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		e.logger.Warn("audio unavailable, playing silently", "err", err)
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.open = true
	e.logger.Debug("audio opened", "rate", int(sampleRate))
	return nil
}

// Close stops playback and releases the device.
func (e *Engine) Close() {
	if !e.open {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.open = false
}

// Opened reports whether a device is playing the mixer.
func (e *Engine) Opened() bool {
	return e.open
}

// PlayCue restarts the cue from its beginning.
func (e *Engine) PlayCue(cue game.Cue) {
	if t, ok := e.cues[cue]; ok {
		t.Play()
	}
}

// StartMusic plays the background music from the start, looping.
func (e *Engine) StartMusic() {
	e.music.Play()
}

// StopMusic pauses the background music and rewinds it.
func (e *Engine) StopMusic() {
	e.music.Pause()
	e.music.Rewind()
}

// Music returns the background music track.
func (e *Engine) Music() *Track {
	return e.music
}

// Cue returns the track of a cue.
func (e *Engine) Cue(cue game.Cue) *Track {
	return e.cues[cue]
}

var _ game.Audio = (*Engine)(nil)

// Package audio plays the game's music and sound cues through the beep speaker.
// All sounds are synthesized at startup; there are no asset files.
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Track is a buffered sound with play, pause, seek-to-start, volume and loop
// controls. It never ends as a beep.Streamer: while paused or finished it
// streams silence, so it can stay in a mixer for the life of the program.
type Track struct {
	mu      sync.Mutex
	name    string
	src     beep.StreamSeeker
	vol     *effects.Volume
	volume  float64
	loop    bool
	playing bool
}

// NewTrack buffers content and returns a paused track at volume 1.
func NewTrack(name string, format beep.Format, content beep.Streamer) *Track {
	buf := beep.NewBuffer(format)
	buf.Append(content)
	src := buf.Streamer(0, buf.Len())

	return &Track{
		name:   name,
		src:    src,
		vol:    &effects.Volume{Streamer: src, Base: 2},
		volume: 1,
	}
}

// Name returns the track name.
func (t *Track) Name() string {
	return t.name
}

// Play starts the track from the beginning.
func (t *Track) Play() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.src.Seek(0)
	t.playing = t.src.Len() > 0
}

// Pause stops playback and keeps the position.
func (t *Track) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playing = false
}

// Resume continues playback from the current position.
func (t *Track) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playing = t.src.Len() > 0 && (t.loop || t.src.Position() < t.src.Len())
}

// Rewind seeks to the start without changing whether the track plays.
func (t *Track) Rewind() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.src.Seek(0)
}

// SetVolume sets the linear volume in [0, 1].
func (t *Track) SetVolume(v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.volume = min(max(v, 0), 1)
	if t.volume == 0 {
		t.vol.Silent = true
		t.vol.Volume = 0
		return
	}
	// math.Log2(0) is -Inf, so zero is handled as silent above.
	t.vol.Silent = false
	t.vol.Volume = math.Log2(t.volume)
}

// SetLoop sets whether the track restarts when it reaches the end.
func (t *Track) SetLoop(loop bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loop = loop
}

// Playing reports whether the track is producing sound.
func (t *Track) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// Volume returns the linear volume.
func (t *Track) Volume() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.volume
}

// Loop reports whether the track loops.
func (t *Track) Loop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loop
}

// Position returns the current sample position.
func (t *Track) Position() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.src.Position()
}

// Len returns the track length in samples.
func (t *Track) Len() int {
	return t.src.Len()
}

// Stream implements beep.Streamer. It always fills samples completely.
func (t *Track) Stream(samples [][2]float64) (n int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	filled := 0
	for filled < len(samples) && t.playing {
		k, more := t.vol.Stream(samples[filled:])
		filled += k
		if more && k > 0 {
			continue
		}
		if !t.loop {
			t.playing = false
			break
		}
		if err := t.src.Seek(0); err != nil {
			t.playing = false
			break
		}
	}

	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *Track) Err() error {
	return nil
}

package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// note is one tone of a synthesized sound. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// tone returns a sine tone shaped with a short attack and release.
func tone(sr beep.SampleRate, n note) beep.Streamer {
	samples := sr.N(n.dur)
	if n.freq <= 0 {
		return beep.Silence(samples)
	}
	sine, err := generators.SineTone(sr, n.freq)
	if err != nil {
		return beep.Silence(samples)
	}
	attack := min(5*time.Millisecond, n.dur/4)
	release := min(30*time.Millisecond, n.dur/2)
	return newEnvelope(beep.Take(samples, sine), n.dur, attack, release, sr)
}

// melody plays notes one after another.
func melody(sr beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = tone(sr, n)
	}
	return beep.Seq(parts...)
}

// Sound content of the game.

func paddleSound(sr beep.SampleRate) beep.Streamer {
	return melody(sr, note{660, 60 * time.Millisecond})
}

func brickSound(sr beep.SampleRate) beep.Streamer {
	return melody(sr,
		note{990, 45 * time.Millisecond},
		note{1320, 60 * time.Millisecond},
	)
}

func gameOverSound(sr beep.SampleRate) beep.Streamer {
	return melody(sr,
		note{440, 180 * time.Millisecond},
		note{330, 180 * time.Millisecond},
		note{262, 180 * time.Millisecond},
		note{196, 400 * time.Millisecond},
	)
}

// musicLoop is a short arpeggio that repeats while a session runs.
func musicLoop(sr beep.SampleRate) beep.Streamer {
	const step = 180 * time.Millisecond
	return melody(sr,
		note{220, step}, note{262, step}, note{330, step}, note{440, step},
		note{196, step}, note{247, step}, note{294, step}, note{392, step},
		note{175, step}, note{220, step}, note{262, step}, note{349, step},
		note{196, step}, note{247, step}, note{294, step}, note{0, step},
	)
}

// envelope applies linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, sr beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  sr.N(attack),
		releaseSamples: sr.N(release),
		totalSamples:   sr.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := range n {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

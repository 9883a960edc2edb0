package game

// Cue is a one-shot sound effect.
type Cue int

const (
	CuePaddle Cue = iota
	CueBrick
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CuePaddle:
		return "paddle"
	case CueBrick:
		return "brick"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Audio is the sound collaborator. The game only issues commands; playback
// state lives in the implementation.
type Audio interface {
	PlayCue(cue Cue)
	StartMusic()
	StopMusic()
}

// NopAudio discards every command.
type NopAudio struct{}

func (NopAudio) PlayCue(Cue) {}
func (NopAudio) StartMusic() {}
func (NopAudio) StopMusic() {}

package game

// View is one of the screens the lifecycle switches between.
type View int

const (
	ViewStart View = iota
	ViewPlaying
	ViewGameOver
	ViewVictory
)

// String returns the view name.
func (v View) String() string {
	switch v {
	case ViewStart:
		return "start"
	case ViewPlaying:
		return "playing"
	case ViewGameOver:
		return "game-over"
	case ViewVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// VictoryMessage is shown on the completion confirmation.
const VictoryMessage = "You Win! Game Completed!"

// Display receives screen changes from the lifecycle.
type Display interface {
	Show(view View)
	SetFinalScore(score int)
}

// ViewState is a Display that remembers what should be on screen.
// Frontends read it when drawing.
type ViewState struct {
	current    View
	finalScore int
}

// Show switches the visible screen.
func (v *ViewState) Show(view View) {
	v.current = view
}

// SetFinalScore sets the score shown on the end screens.
func (v *ViewState) SetFinalScore(score int) {
	v.finalScore = score
}

// Current returns the visible screen.
func (v *ViewState) Current() View {
	return v.current
}

// FinalScore returns the score of the last finished session.
func (v *ViewState) FinalScore() int {
	return v.finalScore
}

type nopDisplay struct{}

func (nopDisplay) Show(View) {}
func (nopDisplay) SetFinalScore(int) {}

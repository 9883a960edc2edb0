package game

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a lifecycle operation is not allowed in the current phase.
var ErrInvalidTransition = errors.New("invalid session transition")

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseWon
	PhaseLost
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends a session.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// legalTransitions enumerates every allowed phase change.
var legalTransitions = map[Phase][]Phase{
	PhaseNotStarted: {PhaseRunning},
	PhaseRunning:    {PhaseWon, PhaseLost},
	PhaseWon:        {PhaseRunning, PhaseNotStarted},
	PhaseLost:       {PhaseRunning, PhaseNotStarted},
}

// CanTransition reports whether the session may move from p to next.
func (p Phase) CanTransition(next Phase) bool {
	for _, allowed := range legalTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeLost Outcome = iota
	OutcomeWon
)

// Phase returns the terminal phase for the outcome.
func (o Outcome) Phase() Phase {
	if o == OutcomeWon {
		return PhaseWon
	}
	return PhaseLost
}

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	return o.Phase().String()
}

// Session is the score and progression of one play-through.
type Session struct {
	Score      int
	LevelIndex int
	Phase      Phase
}

// transition moves the session to next or returns ErrInvalidTransition.
func (s *Session) transition(next Phase) error {
	if !s.Phase.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Phase, next)
	}
	s.Phase = next
	return nil
}

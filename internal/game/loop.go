package game

// Scheduler arranges for frame to run once, later.
// Display refresh, a ticker or a test queue can stand behind it.
type Scheduler interface {
	Next(frame func())
}

// ManualScheduler queues frames until the owner runs them.
// Frontends that own their own clock call RunPending on every tick.
type ManualScheduler struct {
	queue []func()
}

// Next queues a frame.
func (s *ManualScheduler) Next(frame func()) {
	s.queue = append(s.queue, frame)
}

// Pending returns the number of queued frames.
func (s *ManualScheduler) Pending() int {
	return len(s.queue)
}

// RunPending runs the frames queued so far. Frames queued while running wait
// for the next call. It returns how many frames ran.
func (s *ManualScheduler) RunPending() int {
	batch := s.queue
	s.queue = nil
	for _, frame := range batch {
		frame()
	}
	return len(batch)
}

// Drop discards queued frames.
func (s *ManualScheduler) Drop() {
	s.queue = nil
}

// InputSource provides the held-key state for a frame.
type InputSource interface {
	State() InputState
}

// Loop drives a game: every frame draws the current state, steps the
// simulation and re-arms itself while the session is running.
type Loop struct {
	game      *Game
	scheduler Scheduler
	surface   Surface
	input     InputSource
	last      StepResult
}

// NewLoop wires a game to its scheduler, drawing surface and input.
func NewLoop(g *Game, scheduler Scheduler, surface Surface, input InputSource) *Loop {
	return &Loop{
		game:      g,
		scheduler: scheduler,
		surface:   surface,
		input:     input,
	}
}

// Start begins a new session and schedules its first frame.
func (l *Loop) Start() error {
	if err := l.game.StartSession(); err != nil {
		return err
	}
	l.scheduler.Next(l.frame)
	return nil
}

// Game returns the driven game.
func (l *Loop) Game() *Game {
	return l.game
}

// LastStep returns the result of the most recent frame.
func (l *Loop) LastStep() StepResult {
	return l.last
}

func (l *Loop) frame() {
	if !l.game.Running() {
		return
	}

	l.game.Render(l.surface)
	l.last = l.game.Step(l.input.State())

	if l.game.Running() {
		l.scheduler.Next(l.frame)
	}
}

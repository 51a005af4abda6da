package domain

type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandResume
	CommandSkip
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandSkip:
		return "skip"
	}
	return "none"
}

// Completion tells Advance how the outgoing session ended.
type Completion int

const (
	// CompletionNatural means the countdown reached zero.
	CompletionNatural Completion = iota
	// CompletionSkipped means the user ended the session early.
	CompletionSkipped
)

// State is the mutable session state. It is owned by a single loop and only
// changed through Apply, Tick and Advance.
type State struct {
	Kind                    SessionKind
	RemainingSeconds        int
	TotalSeconds            int
	PomodorosSinceLongBreak int
	Paused                  bool
	Quit                    bool
	CompletedPomodoros      int
	TotalFocusMinutes       int
}

// NewState starts a run with a full Work session.
func NewState(cfg TimerConfig) State {
	total := cfg.SecondsFor(SessionWork)
	return State{
		Kind:             SessionWork,
		RemainingSeconds: total,
		TotalSeconds:     total,
	}
}

// Advance moves to the next session of the work/short/long cycle.
// Only natural Work completions are credited to the pomodoro and focus
// totals; a skipped Work session still counts towards the long break.
func (s *State) Advance(cfg TimerConfig, completion Completion) SessionKind {
	if s.Kind == SessionWork {
		if completion == CompletionNatural {
			s.CompletedPomodoros++
			s.TotalFocusMinutes += cfg.WorkMinutes
		}
		s.PomodorosSinceLongBreak++
		if s.PomodorosSinceLongBreak >= cfg.PomodorosUntilLongBreak {
			s.Kind = SessionLongBreak
			s.PomodorosSinceLongBreak = 0
		} else {
			s.Kind = SessionShortBreak
		}
	} else {
		s.Kind = SessionWork
	}

	s.TotalSeconds = cfg.SecondsFor(s.Kind)
	s.RemainingSeconds = s.TotalSeconds
	return s.Kind
}

// Effect reports what applying a command did.
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	EffectPaused
	EffectResumed
	EffectSkipped
)

// Apply executes a single command. Pause and resume are idempotent; skip
// always ends the current session, paused or not.
func (s *State) Apply(cmd Command, cfg TimerConfig) Effect {
	switch cmd {
	case CommandQuit:
		s.Quit = true
		return EffectQuit
	case CommandPause:
		if s.Paused {
			return EffectNone
		}
		s.Paused = true
		return EffectPaused
	case CommandResume:
		if !s.Paused {
			return EffectNone
		}
		s.Paused = false
		return EffectResumed
	case CommandSkip:
		s.Advance(cfg, CompletionSkipped)
		return EffectSkipped
	}
	return EffectNone
}

// Tick removes one second from the countdown. It does nothing while paused,
// after quit or once the countdown is exhausted, and reports whether the
// session has just reached zero.
func (s *State) Tick() bool {
	if s.Paused || s.Quit || s.RemainingSeconds <= 0 {
		return false
	}
	s.RemainingSeconds--
	return s.RemainingSeconds == 0
}

// Progress is the elapsed fraction of the current session in [0, 1].
func (s State) Progress() float64 {
	if s.TotalSeconds <= 0 {
		return 0
	}
	progress := float64(s.TotalSeconds-s.RemainingSeconds) / float64(s.TotalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

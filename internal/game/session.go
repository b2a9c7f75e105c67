package game

import "github.com/google/uuid"

type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateWon
)

// Notification is a single timed on-screen message. Only one is shown at a
// time; a new one replaces the old.
type Notification struct {
	Text      string
	Color     RGB
	Remaining float64
	Duration  float64
	Large     bool
}

// GameSession tracks the run through the current maze: state, clock, and
// the active notification. Each generated maze gets its own run ID so log
// lines from different attempts can be told apart.
type GameSession struct {
	State   GameState
	RunID   uuid.UUID
	Elapsed float64
	WinTime float64

	Notif    Notification
	hasNotif bool
}

func NewGameSession() *GameSession {
	return &GameSession{State: StatePlaying, RunID: uuid.New()}
}

// StartRun resets the session for a freshly generated maze.
func (s *GameSession) StartRun() {
	s.State = StatePlaying
	s.RunID = uuid.New()
	s.Elapsed = 0
	s.WinTime = 0
	s.hasNotif = false
}

// ResetClock restarts the timer without touching the run identity,
// used when the player resets to the entrance of the same maze.
func (s *GameSession) ResetClock() {
	s.Elapsed = 0
	s.hasNotif = false
	if s.State == StateWon {
		s.State = StatePlaying
	}
}

// Update advances the run clock (only while playing) and the notification
// countdown.
func (s *GameSession) Update(dt float64) {
	if s.State == StatePlaying {
		s.Elapsed += dt
	}
	if s.hasNotif {
		s.Notif.Remaining -= dt
		if s.Notif.Remaining <= 0 {
			s.hasNotif = false
		}
	}
}

// TogglePause flips between playing and paused; no-op once won.
func (s *GameSession) TogglePause() {
	switch s.State {
	case StatePlaying:
		s.State = StatePaused
	case StatePaused:
		s.State = StatePlaying
	}
}

// Win freezes the clock and enters the won state.
func (s *GameSession) Win() {
	if s.State == StateWon {
		return
	}
	s.State = StateWon
	s.WinTime = s.Elapsed
}

// Notify replaces the current on-screen message.
func (s *GameSession) Notify(text string, col RGB, duration float64, large bool) {
	s.Notif = Notification{
		Text:      text,
		Color:     col,
		Remaining: duration,
		Duration:  duration,
		Large:     large,
	}
	s.hasNotif = true
}

// ActiveNotification returns the current message and its fade alpha, or
// ok=false when nothing is showing.
func (s *GameSession) ActiveNotification() (Notification, float64, bool) {
	if !s.hasNotif {
		return Notification{}, 0, false
	}
	alpha := s.Notif.Remaining / NotifyFadeTime
	if alpha > 1 {
		alpha = 1
	}
	return s.Notif, alpha, true
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ClockOnlyRunsWhilePlaying(t *testing.T) {
	t.Parallel()
	s := NewGameSession()

	s.Update(1.0)
	assert.InDelta(t, 1.0, s.Elapsed, 1e-9)

	s.TogglePause()
	s.Update(1.0)
	assert.InDelta(t, 1.0, s.Elapsed, 1e-9, "clock should freeze while paused")

	s.TogglePause()
	s.Update(0.5)
	assert.InDelta(t, 1.5, s.Elapsed, 1e-9)
}

func TestSession_WinFreezesClock(t *testing.T) {
	t.Parallel()
	s := NewGameSession()
	s.Update(12.5)
	s.Win()

	assert.Equal(t, StateWon, s.State)
	assert.InDelta(t, 12.5, s.WinTime, 1e-9)

	s.Update(5.0)
	assert.InDelta(t, 12.5, s.Elapsed, 1e-9)

	// A second win keeps the original time.
	s.Win()
	assert.InDelta(t, 12.5, s.WinTime, 1e-9)
}

func TestSession_PauseIsNoOpAfterWin(t *testing.T) {
	t.Parallel()
	s := NewGameSession()
	s.Win()
	s.TogglePause()
	assert.Equal(t, StateWon, s.State)
}

func TestSession_ResetClockLeavesWonState(t *testing.T) {
	t.Parallel()
	s := NewGameSession()
	s.Update(3.0)
	s.Win()

	s.ResetClock()
	assert.Equal(t, StatePlaying, s.State)
	assert.InDelta(t, 0.0, s.Elapsed, 1e-9)
}

func TestSession_StartRunRotatesRunID(t *testing.T) {
	t.Parallel()
	s := NewGameSession()
	first := s.RunID
	s.Update(4.0)
	s.Win()

	s.StartRun()
	assert.NotEqual(t, first, s.RunID)
	assert.Equal(t, StatePlaying, s.State)
	assert.InDelta(t, 0.0, s.Elapsed, 1e-9)
	assert.InDelta(t, 0.0, s.WinTime, 1e-9)
}

func TestNotification_ReplaceAndFade(t *testing.T) {
	t.Parallel()
	s := NewGameSession()

	_, _, ok := s.ActiveNotification()
	assert.False(t, ok)

	s.Notify("FIRST", Palette.HUDText, 2.0, false)
	s.Notify("SECOND", Palette.HUDWarn, 2.0, true)

	n, alpha, ok := s.ActiveNotification()
	require.True(t, ok)
	assert.Equal(t, "SECOND", n.Text)
	assert.True(t, n.Large)
	assert.InDelta(t, 1.0, alpha, 1e-9, "fresh notification is fully opaque")

	// Fade kicks in over the last NotifyFadeTime seconds.
	s.Update(2.0 - NotifyFadeTime/2)
	_, alpha, ok = s.ActiveNotification()
	require.True(t, ok)
	assert.InDelta(t, 0.5, alpha, 1e-6)

	s.Update(NotifyFadeTime)
	_, _, ok = s.ActiveNotification()
	assert.False(t, ok, "expired notification should disappear")
}

package game

import "testing"

func TestSessionPauseResume(t *testing.T) {
	s := NewSession()

	if s.IsPaused() || s.IsLost() {
		t.Fatal("new session should be running")
	}

	s.Pause()
	if !s.IsPaused() {
		t.Error("Pause() should pause")
	}

	s.Resume()
	if s.IsPaused() {
		t.Error("Resume() should unpause")
	}
}

func TestSessionToggle(t *testing.T) {
	s := NewSession()

	s.Toggle()
	if !s.IsPaused() {
		t.Error("first Toggle() should pause")
	}
	s.Toggle()
	if s.IsPaused() {
		t.Error("second Toggle() should resume")
	}
}

// TestSessionGameOverIsIrreversible 失败后任何恢复操作都不能解除暂停
func TestSessionGameOverIsIrreversible(t *testing.T) {
	s := NewSession()
	s.GameOver()

	if !s.IsLost() || !s.IsPaused() {
		t.Fatal("GameOver() should set lost and paused")
	}

	s.Resume()
	s.Toggle()
	s.Pause()
	s.Resume()

	if !s.IsPaused() {
		t.Error("session must stay paused after game over")
	}
	if !s.IsLost() {
		t.Error("session must stay lost after game over")
	}
}

func TestSessionGameOverWhilePaused(t *testing.T) {
	s := NewSession()
	s.Pause()
	s.GameOver()
	s.Resume()

	if !s.IsPaused() {
		t.Error("game over while paused must keep the session paused")
	}
}

func TestSessionPauseCallback(t *testing.T) {
	s := NewSession()
	var events []bool
	s.SetOnPauseChanged(func(paused bool) { events = append(events, paused) })

	s.Pause()
	s.Pause() // 重复暂停不触发回调
	s.Resume()
	s.GameOver()
	s.Resume()

	want := []bool{true, false, true}
	if len(events) != len(want) {
		t.Fatalf("events: got %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: got %v, want %v", i, events[i], want[i])
		}
	}
}

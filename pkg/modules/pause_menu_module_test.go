package modules

import (
	"testing"

	"github.com/decker502/hollow/pkg/types"
)

type pauseCalls struct {
	continued, restarted, mainMenu, clicks int
}

func newTestPauseMenu() (*PauseMenuModule, *pauseCalls) {
	calls := &pauseCalls{}
	m := NewPauseMenuModule(960, 640, PauseMenuCallbacks{
		OnContinue: func() { calls.continued++ },
		OnRestart:  func() { calls.restarted++ },
		OnMainMenu: func() { calls.mainMenu++ },
		OnClick:    func() { calls.clicks++ },
	})
	return m, calls
}

func TestPauseMenuModule_IsActive(t *testing.T) {
	m, _ := newTestPauseMenu()
	if m.IsActive() {
		t.Error("Expected IsActive() to return false initially")
	}

	m.Update(OverlayPaused, types.InputSnapshot{}, farAway)
	if !m.IsActive() || m.Mode() != OverlayPaused {
		t.Errorf("Paused: got active=%v mode=%d", m.IsActive(), m.Mode())
	}

	m.Update(OverlayNone, types.InputSnapshot{}, farAway)
	if m.IsActive() {
		t.Error("Expected IsActive() to return false after resume")
	}
}

func TestPauseMenuModule_Shortcuts(t *testing.T) {
	m, calls := newTestPauseMenu()

	// 游戏进行中快捷键无效
	m.Update(OverlayNone, types.InputSnapshot{RestartPressed: true, MenuPressed: true}, farAway)
	if calls.restarted != 0 || calls.mainMenu != 0 {
		t.Errorf("Shortcuts while playing: got restart=%d menu=%d, want 0", calls.restarted, calls.mainMenu)
	}

	m.Update(OverlayLost, types.InputSnapshot{RestartPressed: true}, farAway)
	if calls.restarted != 1 {
		t.Errorf("R on lost overlay: got %d restarts, want 1", calls.restarted)
	}

	m.Update(OverlayVictory, types.InputSnapshot{MenuPressed: true}, farAway)
	if calls.mainMenu != 1 {
		t.Errorf("M on victory overlay: got %d, want 1", calls.mainMenu)
	}
}

func TestPauseMenuModule_ContinueOnlyWhenPaused(t *testing.T) {
	m, calls := newTestPauseMenu()

	m.Update(OverlayPaused, types.InputSnapshot{}, MenuInput{X: -1, Y: -1, Confirm: true})
	if calls.continued != 1 {
		t.Errorf("Continue while paused: got %d, want 1", calls.continued)
	}
	if calls.clicks != 1 {
		t.Errorf("Click cue: got %d, want 1", calls.clicks)
	}

	// 失败菜单的第一项是"重新开始"
	m.Update(OverlayLost, types.InputSnapshot{}, MenuInput{X: -1, Y: -1, Confirm: true})
	if calls.continued != 1 {
		t.Errorf("Continue on lost overlay: got %d, want 1", calls.continued)
	}
	if calls.restarted != 1 {
		t.Errorf("Restart on lost overlay: got %d, want 1", calls.restarted)
	}
}

func TestPauseMenuModule_Title(t *testing.T) {
	m, _ := newTestPauseMenu()
	tests := []struct {
		mode OverlayMode
		want string
	}{
		{OverlayNone, ""},
		{OverlayPaused, "PAUSED"},
		{OverlayLost, "YOU WERE CAUGHT"},
		{OverlayVictory, "YOU ESCAPED"},
	}
	for _, tt := range tests {
		m.Update(tt.mode, types.InputSnapshot{}, farAway)
		if got := m.Title(); got != tt.want {
			t.Errorf("Title(%d): got %q, want %q", tt.mode, got, tt.want)
		}
	}
}

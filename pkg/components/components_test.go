package components

import (
	"image/color"
	"testing"
)

func TestLightSetDisabledZeroesIntensity(t *testing.T) {
	var l LightComponent
	white := color.RGBA{255, 255, 255, 255}

	l.Set(white, 5.55, 2.25, true)
	if l.Intensity != 5.55 || l.Range != 2.25 || !l.Enabled {
		t.Errorf("enabled light: got %+v", l)
	}

	l.Set(white, 5.55, 2.25, false)
	if l.Intensity != 0 || l.Enabled {
		t.Errorf("disabled light: intensity got %v, want 0", l.Intensity)
	}
}

func TestTimerAdvance(t *testing.T) {
	timer := &TimerComponent{Name: "zombie_spawn", TargetTime: 1.0}

	if timer.Advance(0.6) {
		t.Error("timer should not fire at 0.6s")
	}
	if !timer.Advance(0.5) {
		t.Error("timer should fire at 1.1s")
	}
	if timer.CurrentTime != 0 {
		t.Errorf("CurrentTime after fire: got %v, want 0", timer.CurrentTime)
	}
	if timer.Advance(0.1) || timer.IsReady {
		t.Error("timer should restart after firing")
	}
}

func TestStaminaPercentClamped(t *testing.T) {
	tests := []struct {
		stamina, max, want float64
	}{
		{50, 100, 0.5},
		{150, 100, 1},
		{-5, 100, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		l := &LocomotionComponent{Stamina: tt.stamina, MaxStamina: tt.max}
		if got := l.StaminaPercent(); got != tt.want {
			t.Errorf("StaminaPercent(%v/%v): got %v, want %v", tt.stamina, tt.max, got, tt.want)
		}
	}
}

func TestHUDSetters(t *testing.T) {
	h := &HUDComponent{}
	red := color.RGBA{255, 0, 0, 255}

	h.SetStamina(0.2, red)
	h.SetStaminaVisible(true)
	h.SetKeyText("3/8")
	h.SetBatteryText("87%")

	if h.StaminaFill != 0.2 || h.StaminaColor != red || !h.StaminaVisible {
		t.Errorf("stamina fields: got %+v", h)
	}
	if h.KeyText != "3/8" || h.BatteryText != "87%" {
		t.Errorf("texts: got %q / %q", h.KeyText, h.BatteryText)
	}
}

func TestHUDMessageExpires(t *testing.T) {
	var h HUDComponent
	h.ShowMessage("Battery empty", 1.0)

	h.Tick(0.5)
	if h.Message != "Battery empty" {
		t.Errorf("message after 0.5s: got %q, want %q", h.Message, "Battery empty")
	}
	h.Tick(0.6)
	if h.Message != "" || h.MessageTimer != 0 {
		t.Errorf("message after 1.1s: got %q (timer %v), want cleared", h.Message, h.MessageTimer)
	}
}

package systems

import (
	"testing"

	"github.com/decker502/hollow/pkg/config"
)

func TestHeadBobStartsAtRestAndMoves(t *testing.T) {
	bob := NewHeadBob(config.HeadBobConfig{HorizontalRange: 0.1, VerticalRange: 0.1}, 5)

	first := bob.Step(5, 0.25)
	if !approx(first.X, 0) || !approx(first.Y, 0) {
		t.Errorf("first offset: got %+v, want zero", first)
	}

	// 前进 0.25 个周期单位：水平 sin(π/4)，竖直 sin(π/2)
	second := bob.Step(5, 0.25)
	if !approx(second.X, 0.1*0.7071067811865476) {
		t.Errorf("horizontal: got %v, want %v", second.X, 0.1*0.7071067811865476)
	}
	if !approx(second.Y, 0.1) {
		t.Errorf("vertical: got %v, want 0.1", second.Y)
	}
}

func TestJumpBobDipsAndRecovers(t *testing.T) {
	jb := NewJumpBob(config.HeadBobConfig{JumpBobAmount: 0.1, JumpBobDuration: 0.2})

	if jb.Offset() != 0 {
		t.Errorf("idle offset: got %v, want 0", jb.Offset())
	}
	jb.Start()
	jb.Update(0.1)
	if !approx(jb.Offset(), 0.05) {
		t.Errorf("halfway down: got %v, want 0.05", jb.Offset())
	}
	jb.Update(0.2)
	if !approx(jb.Offset(), 0.05) {
		t.Errorf("halfway up: got %v, want 0.05", jb.Offset())
	}
	jb.Update(0.2)
	if jb.Offset() != 0 {
		t.Errorf("after recovery: got %v, want 0", jb.Offset())
	}
}

func TestFOVKickUpAndDown(t *testing.T) {
	kick := NewFOVKick(config.FOVKickConfig{
		Enabled: true, BaseFOV: 60, Increase: 3, TimeToIncrease: 1, TimeToDecrease: 1,
	})

	kick.KickUp()
	kick.Update(0.5)
	if !approx(kick.FOV(), 61.5) {
		t.Errorf("half kick up: got %v, want 61.5", kick.FOV())
	}
	kick.Update(1)
	if !approx(kick.FOV(), 63) {
		t.Errorf("full kick up: got %v, want 63", kick.FOV())
	}

	// 中途换向从当前值开始缩回
	kick.KickDown()
	kick.Update(0.25)
	if !approx(kick.FOV(), 62.25) {
		t.Errorf("quarter kick down: got %v, want 62.25", kick.FOV())
	}
	kick.Update(5)
	if !approx(kick.FOV(), 60) {
		t.Errorf("full kick down: got %v, want 60", kick.FOV())
	}
}

package types

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{X: 3, Z: 4}.Normalize()
	if !almostEqual(v.Len(), 1) {
		t.Errorf("Len: got %v, want 1", v.Len())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3ProjectOnPlane(t *testing.T) {
	// 水平面上的投影去掉竖直分量
	p := Vec3{X: 1, Y: 5, Z: 2}.ProjectOnPlane(Up)
	if !almostEqual(p.Y, 0) || !almostEqual(p.X, 1) || !almostEqual(p.Z, 2) {
		t.Errorf("projection: got %+v, want {1 0 2}", p)
	}

	// 零法线原样返回
	v := Vec3{X: 1, Y: 2, Z: 3}
	if v.ProjectOnPlane(Vec3{}) != v {
		t.Error("zero normal should leave vector unchanged")
	}
}

func TestForwardRightOrthogonal(t *testing.T) {
	for _, yaw := range []float64{0, 0.5, math.Pi / 2, 2, -1.3} {
		f, r := Forward(yaw), Right(yaw)
		if !almostEqual(f.Dot(r), 0) {
			t.Errorf("yaw %v: forward·right = %v, want 0", yaw, f.Dot(r))
		}
		if !almostEqual(f.Len(), 1) || !almostEqual(r.Len(), 1) {
			t.Errorf("yaw %v: expected unit vectors", yaw)
		}
	}
}

func TestInputMoveMagnitude(t *testing.T) {
	s := InputSnapshot{MoveX: 0.6, MoveY: 0.8}
	if !almostEqual(s.MoveMagnitude(), 1) {
		t.Errorf("MoveMagnitude: got %v, want 1", s.MoveMagnitude())
	}
}

package utils

import "math"

// EaseLinear 线性缓动（无缓动），t ∈ [0, 1]
// 视野变化等需要可替换曲线的位置使用
func EaseLinear(t float64) float64 {
	return t
}

// Lerp 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 将 v 限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// WrapAngle 将角度（弧度）规范到 (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// LerpAngle 沿最短方向在两个角度（弧度）之间插值，t 被限制在 [0, 1]
func LerpAngle(a, b, t float64) float64 {
	return a + WrapAngle(b-a)*Clamp01(t)
}

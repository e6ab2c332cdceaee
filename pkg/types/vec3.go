// Package types 定义跨包共享的基础值类型
package types

import "math"

// Vec3 三维向量（世界坐标，Y 轴向上）
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Up 世界向上方向
var Up = Vec3{Y: 1}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 标量乘法
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot 点积
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LenSq 长度平方
func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

// Len 长度
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize 返回单位向量；零向量返回零向量
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// ProjectOnPlane 将向量投影到法线为 normal 的平面上
// normal 为零向量时原样返回
func (v Vec3) ProjectOnPlane(normal Vec3) Vec3 {
	n := normal.Normalize()
	if n == (Vec3{}) {
		return v
	}
	return v.Sub(n.Scale(v.Dot(n)))
}

// Horizontal 去掉 Y 分量
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// Distance 两点间距离
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Forward 根据偏航角返回水平前方向（yaw=0 朝 +Z，顺时针为正）
func Forward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// Right 根据偏航角返回水平右方向
func Right(yaw float64) Vec3 {
	return Vec3{X: math.Cos(yaw), Z: -math.Sin(yaw)}
}

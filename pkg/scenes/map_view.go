package scenes

import "github.com/decker502/hollow/pkg/types"

// mapView 俯视地图的投影：世界 XZ 平面映射到屏幕，+Z 朝上
type mapView struct {
	centerX, centerZ float64 // 屏幕中心对应的世界坐标
	scale            float64 // 像素 / 世界单位
	screenW, screenH int
}

// project 世界坐标转屏幕坐标
func (v mapView) project(p types.Vec3) (float32, float32) {
	x := float64(v.screenW)/2 + (p.X-v.centerX)*v.scale
	y := float64(v.screenH)/2 - (p.Z-v.centerZ)*v.scale
	return float32(x), float32(y)
}

// rect 世界矩形转屏幕矩形 (x, y, w, h)
func (v mapView) rect(minX, maxX, minZ, maxZ float64) (float32, float32, float32, float32) {
	x, y := v.project(types.Vec3{X: minX, Z: maxZ})
	return x, y, float32((maxX - minX) * v.scale), float32((maxZ - minZ) * v.scale)
}

// length 世界长度转像素
func (v mapView) length(d float64) float32 {
	return float32(d * v.scale)
}

package components

import "github.com/decker502/hollow/pkg/types"

// CameraComponent 第一人称镜头状态
// 由移动系统写入（镜头晃动偏移、视野），渲染端只读
type CameraComponent struct {
	BobOffset types.Vec3 // 相对原始位置的偏移（头部晃动 + 落地晃动）
	FOV       float64    // 当前视野角度
}

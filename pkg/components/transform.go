package components

import "github.com/decker502/hollow/pkg/types"

// TransformComponent 世界空间位置与朝向
type TransformComponent struct {
	Position types.Vec3
	Yaw      float64 // 偏航角（弧度），0 朝向 +Z
}

package components

import "github.com/decker502/hollow/pkg/types"

// SpawnerComponent 钥匙生成点
// 已访问的生成点灯光永久变暗，不会再次激活
type SpawnerComponent struct {
	Index   int
	Name    string
	Visited bool
	Anchor  *types.Vec3 // 钥匙放置锚点，nil 表示配置缺失
}

package components

// PlayerComponent 玩家标记组件
// 僵尸追击、接触检测等系统通过此组件查找玩家实体
type PlayerComponent struct {
	Name string
}

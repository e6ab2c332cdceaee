package components

import "image/color"

// HUDComponent 界面显示状态
// 各系统只写入数值，由渲染端（ebiten 场景或终端前端）负责绘制
type HUDComponent struct {
	StaminaFill    float64 // 体力条填充比例 [0, 1]
	StaminaColor   color.RGBA
	StaminaVisible bool

	KeyText     string // 如 "3/8"
	BatteryText string // 如 "87%"

	Message      string  // 临时提示（如电量耗尽）
	MessageTimer float64 // 提示剩余显示时间（秒）
}

// SetStamina 更新体力条
func (h *HUDComponent) SetStamina(fill float64, c color.RGBA) {
	h.StaminaFill = fill
	h.StaminaColor = c
}

// SetStaminaVisible 显示/隐藏体力条
func (h *HUDComponent) SetStaminaVisible(visible bool) {
	h.StaminaVisible = visible
}

// SetKeyText 更新钥匙计数文本
func (h *HUDComponent) SetKeyText(text string) {
	h.KeyText = text
}

// SetBatteryText 更新电量文本
func (h *HUDComponent) SetBatteryText(text string) {
	h.BatteryText = text
}

// ShowMessage 显示一条临时提示
func (h *HUDComponent) ShowMessage(text string, duration float64) {
	h.Message = text
	h.MessageTimer = duration
}

// Tick 推进提示计时，到期后清除
func (h *HUDComponent) Tick(deltaTime float64) {
	if h.MessageTimer <= 0 {
		return
	}
	h.MessageTimer -= deltaTime
	if h.MessageTimer <= 0 {
		h.Message = ""
		h.MessageTimer = 0
	}
}

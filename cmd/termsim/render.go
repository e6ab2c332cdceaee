package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
	"github.com/decker502/hollow/pkg/world"
	"github.com/gdamore/tcell/v2"
)

// 终端字符约为 1:2，横向每个世界单位占两列
const (
	colsPerUnit    = 2.0
	rowsPerUnit    = 1.0
	hudRows        = 3
	staminaBarSize = 20
	lowBattery     = 20.0
)

var (
	styleDefault  = tcell.StyleDefault
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleKey      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePortal   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleZombie   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBattery  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleProp     = tcell.StyleDefault.Foreground(tcell.ColorBlue)

	styleLowBattery = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleOverlay  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// cellView 以玩家为中心的字符网格投影，+Z 朝上
type cellView struct {
	centerX, centerZ float64
	cols, rows       int
}

// cell 世界坐标转网格坐标
func (v cellView) cell(p types.Vec3) (int, int) {
	x := v.cols/2 + int(math.Round((p.X-v.centerX)*colsPerUnit))
	y := v.rows/2 - int(math.Round((p.Z-v.centerZ)*rowsPerUnit))
	return x, y
}

// world 网格中心点对应的世界坐标
func (v cellView) world(x, y int) (float64, float64) {
	wx := v.centerX + float64(x-v.cols/2)/colsPerUnit
	wz := v.centerZ - float64(y-v.rows/2)/rowsPerUnit
	return wx, wz
}

func (v cellView) inside(x, y int) bool {
	return x >= 0 && x < v.cols && y >= 0 && y < v.rows
}

// platformRune 平台越高字符越密
func platformRune(height float64) rune {
	switch {
	case height <= 0:
		return '.'
	case height < 5:
		return '░'
	case height < 12:
		return '▒'
	default:
		return '▓'
	}
}

// headingRune 玩家朝向箭头（yaw=0 朝上，顺时针为正）
func headingRune(yaw float64) rune {
	arrows := []rune{'^', '>', 'v', '<'}
	i := int(math.Round(yaw/(math.Pi/2))) % 4
	if i < 0 {
		i += 4
	}
	return arrows[i]
}

func rgbStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// drawFrame 绘制地图与 HUD
func drawFrame(screen tcell.Screen, w *world.World) {
	screen.Clear()
	cols, rows := screen.Size()
	mapRows := max(rows-hudRows, 1)

	v := cellView{cols: cols, rows: mapRows}
	if t, ok := w.PlayerTransform(); ok {
		v.centerX, v.centerZ = t.Position.X, t.Position.Z
	}

	drawTerrain(screen, w, v)
	drawEntities(screen, w, v)
	drawHUD(screen, w, mapRows, cols)
	screen.Show()
}

func drawTerrain(screen tcell.Screen, w *world.World, v cellView) {
	bounds := w.Level().Bounds
	physics := w.Physics()
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			wx, wz := v.world(x, y)
			if !bounds.Contains(wx, wz) {
				continue
			}
			h := physics.GroundHeight(wx, wz)
			style := styleGround
			if h > 0 {
				style = stylePlatform
			}
			screen.SetContent(x, y, platformRune(h), nil, style)
		}
	}
}

func drawEntities(screen tcell.Screen, w *world.World, v cellView) {
	em := w.EntityManager()
	put := func(p types.Vec3, r rune, style tcell.Style) {
		if x, y := v.cell(p); v.inside(x, y) {
			screen.SetContent(x, y, r, nil, style)
		}
	}
	position := func(id ecs.EntityID) types.Vec3 {
		t, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		return t.Position
	}

	for _, id := range ecs.GetEntitiesWith3[*components.SpawnerComponent, *components.LightComponent, *components.TransformComponent](em) {
		light, _ := ecs.GetComponent[*components.LightComponent](em, id)
		if light.Enabled {
			put(position(id), '*', rgbStyle(light.Color))
		}
	}
	for _, id := range ecs.GetEntitiesWith2[*components.BatteryPickupComponent, *components.TransformComponent](em) {
		put(position(id), 'B', styleBattery)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.InspectableComponent, *components.TransformComponent](em) {
		put(position(id), '?', styleProp)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.KeyComponent, *components.TransformComponent](em) {
		put(position(id), 'K', styleKey)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.PortalComponent, *components.TransformComponent](em) {
		put(position(id), 'O', stylePortal)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.TransformComponent](em) {
		put(position(id), 'Z', styleZombie)
	}
	if t, ok := w.PlayerTransform(); ok {
		put(t.Position, headingRune(t.Yaw), stylePlayer)
	}
}

// staminaBar 形如 "[#####-----]"
func staminaBar(fill float64) string {
	n := int(math.Round(max(0, min(fill, 1)) * staminaBarSize))
	return "[" + strings.Repeat("#", n) + strings.Repeat("-", staminaBarSize-n) + "]"
}

// batteryStyle 电量低于 lowBattery 时以红色显示
func batteryStyle(battery float64) tcell.Style {
	if battery < lowBattery {
		return styleLowBattery
	}
	return styleBattery
}

// statusLine 覆盖层状态或操作提示
func statusLine(w *world.World) (string, tcell.Style) {
	switch {
	case w.Session().IsLost():
		return " YOU WERE CAUGHT   r restart   q quit ", styleOverlay
	case w.Won():
		return " YOU ESCAPED   r play again   q quit ", styleOverlay
	case w.Session().IsPaused():
		return " PAUSED   Esc resume   r restart   q quit ", styleOverlay
	default:
		return "wasd/arrows move  WASD sprint  j/l turn  space jump  f light  e interact  Esc pause", styleGround
	}
}

func drawHUD(screen tcell.Screen, w *world.World, top, cols int) {
	hud := w.HUD()

	x := drawText(screen, 0, top, "Stamina ", styleDefault)
	if hud.StaminaVisible {
		x = drawText(screen, x, top, staminaBar(hud.StaminaFill), rgbStyle(hud.StaminaColor))
	}
	x = drawText(screen, x, top, fmt.Sprintf("  Keys %s  Battery ", hud.KeyText), styleDefault)
	drawText(screen, x, top, hud.BatteryText, batteryStyle(w.Battery()))

	switch prompt, ok := w.InteractTarget(); {
	case hud.Message != "":
		drawText(screen, 0, top+1, hud.Message, styleKey)
	case ok:
		drawText(screen, 0, top+1, "[e] "+prompt, styleDefault)
	}

	line, style := statusLine(w)
	if len(line) > cols {
		line = line[:cols]
	}
	drawText(screen, 0, top+2, line, style)
}

// drawText 返回文本结束后的列
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

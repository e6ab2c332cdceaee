package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/modules"
	"github.com/decker502/hollow/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	groundColor   = color.RGBA{R: 18, G: 18, B: 22, A: 255}
	boundsColor   = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	keyColor      = color.RGBA{R: 255, G: 210, B: 40, A: 255}
	portalColor   = color.RGBA{R: 170, G: 60, B: 255, A: 255}
	zombieColor   = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	playerColor   = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	batteryColor  = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	propColor     = color.RGBA{R: 80, G: 140, B: 220, A: 255}
	beamColor     = color.RGBA{R: 255, G: 244, B: 214, A: 90}
	barBackground = color.RGBA{R: 30, G: 30, B: 30, A: 200}
)

// HUD 布局
const (
	staminaBarWidth  = 200
	staminaBarHeight = 12
	hudMargin        = 20
	// flashlightHalfAngle 手电筒光锥半角（弧度）
	flashlightHalfAngle = math.Pi / 6
	// markerRadius 拾取物与角色的最小绘制半径（像素）
	markerRadius = 4
)

// view 以玩家为中心的地图投影
func (s *GameScene) view() mapView {
	v := mapView{
		scale:   config.MapPixelsPerUnit,
		screenW: config.GameWindowWidth,
		screenH: config.GameWindowHeight,
	}
	if t, ok := s.world.PlayerTransform(); ok {
		v.centerX, v.centerZ = t.Position.X, t.Position.Z
	}
	return v
}

// platformColor 平台越高颜色越亮
func platformColor(height float64) color.RGBA {
	c := 50 + math.Min(height*8, 180)
	return color.RGBA{R: uint8(c), G: uint8(c), B: uint8(c * 0.9), A: 255}
}

// drawMap 俯视地图：平台、生成点灯光、钥匙、传送门、拾取物、僵尸、玩家
func (s *GameScene) drawMap(screen *ebiten.Image) {
	screen.Fill(groundColor)
	v := s.view()
	em := s.world.EntityManager()
	level := s.world.Level()

	b := level.Bounds
	x, y, w, h := v.rect(b.MinX, b.MaxX, b.MinZ, b.MaxZ)
	vector.StrokeRect(screen, x, y, w, h, 2, boundsColor, false)

	for _, p := range level.Platforms {
		x, y, w, h := v.rect(p.MinX, p.MaxX, p.MinZ, p.MaxZ)
		vector.DrawFilledRect(screen, x, y, w, h, platformColor(p.Height), false)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.SpawnerComponent, *components.LightComponent, *components.TransformComponent](em) {
		light, _ := ecs.GetComponent[*components.LightComponent](em, id)
		t, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if !light.Enabled {
			continue
		}
		c := light.Color
		c.A = uint8(math.Min(light.Intensity*40, 220))
		cx, cy := v.project(t.Position)
		vector.DrawFilledCircle(screen, cx, cy, v.length(light.Range), c, true)
	}

	s.drawMarkers(screen, v, ecs.GetEntitiesWith2[*components.BatteryPickupComponent, *components.TransformComponent](em), batteryColor)
	s.drawMarkers(screen, v, ecs.GetEntitiesWith2[*components.InspectableComponent, *components.TransformComponent](em), propColor)
	s.drawMarkers(screen, v, ecs.GetEntitiesWith2[*components.KeyComponent, *components.TransformComponent](em), keyColor)
	s.drawMarkers(screen, v, ecs.GetEntitiesWith2[*components.PortalComponent, *components.TransformComponent](em), portalColor)

	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.TransformComponent](em) {
		t, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		s.drawActor(screen, v, t, zombieColor)
	}

	if t, ok := s.world.PlayerTransform(); ok {
		if light, ok := ecs.GetComponent[*components.LightComponent](em, s.world.Player()); ok && light.Enabled {
			drawBeam(screen, v, t, light.Range)
		}
		s.drawActor(screen, v, t, playerColor)
	}
}

func (s *GameScene) drawMarkers(screen *ebiten.Image, v mapView, ids []ecs.EntityID, c color.RGBA) {
	em := s.world.EntityManager()
	for _, id := range ids {
		t, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		cx, cy := v.project(t.Position)
		vector.DrawFilledCircle(screen, cx, cy, markerRadius, c, true)
	}
}

// drawActor 圆点加朝向线
func (s *GameScene) drawActor(screen *ebiten.Image, v mapView, t *components.TransformComponent, c color.RGBA) {
	cx, cy := v.project(t.Position)
	r := max(v.length(0.5), markerRadius)
	vector.DrawFilledCircle(screen, cx, cy, r, c, true)
	fx, fy := v.project(t.Position.Add(types.Forward(t.Yaw)))
	vector.StrokeLine(screen, cx, cy, fx, fy, 2, c, true)
}

// drawBeam 手电筒光锥的两条边
func drawBeam(screen *ebiten.Image, v mapView, t *components.TransformComponent, reach float64) {
	cx, cy := v.project(t.Position)
	for _, offset := range []float64{-flashlightHalfAngle, flashlightHalfAngle} {
		ex, ey := v.project(t.Position.Add(types.Forward(t.Yaw + offset).Scale(reach)))
		vector.StrokeLine(screen, cx, cy, ex, ey, 1, beamColor, true)
	}
}

// drawHUD 体力条、钥匙数、电量、提示信息
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	hud := s.world.HUD()

	ebitenutil.DebugPrintAt(screen, "Keys: "+hud.KeyText, hudMargin, hudMargin)
	ebitenutil.DebugPrintAt(screen, "Battery: "+hud.BatteryText, hudMargin, hudMargin+18)

	if hud.StaminaVisible {
		x := float32(hudMargin)
		y := float32(config.GameWindowHeight - hudMargin - staminaBarHeight)
		vector.DrawFilledRect(screen, x, y, staminaBarWidth, staminaBarHeight, barBackground, false)
		vector.DrawFilledRect(screen, x, y, float32(staminaBarWidth*hud.StaminaFill), staminaBarHeight, hud.StaminaColor, false)
	}

	if hud.Message != "" {
		modules.DrawCenteredText(screen, hud.Message, config.GameWindowWidth/2, config.GameWindowHeight/2-60)
	}

	if prompt, ok := s.world.InteractTarget(); ok && !s.overlay.IsActive() {
		modules.DrawCenteredText(screen, fmt.Sprintf("[E] %s", prompt), config.GameWindowWidth/2, config.GameWindowHeight-80)
	}
}

package main

import (
	"math"
	"strings"
	"testing"

	"github.com/decker502/hollow/pkg/components"
	"github.com/decker502/hollow/pkg/ecs"
	"github.com/decker502/hollow/pkg/types"
	"github.com/gdamore/tcell/v2"
)

func TestCellViewRoundTrip(t *testing.T) {
	v := cellView{centerX: 3, centerZ: -2, cols: 80, rows: 21}

	x, y := v.cell(types.Vec3{X: 3, Z: -2})
	if x != 40 || y != 10 {
		t.Errorf("center cell: got (%d, %d), want (40, 10)", x, y)
	}
	x, y = v.cell(types.Vec3{X: 4, Z: 0})
	if x != 42 || y != 8 {
		t.Errorf("offset cell: got (%d, %d), want (42, 8)", x, y)
	}
	if wx, wz := v.world(42, 8); wx != 4 || wz != 0 {
		t.Errorf("world(42, 8): got (%v, %v), want (4, 0)", wx, wz)
	}
	if v.inside(80, 0) || v.inside(0, -1) || !v.inside(79, 20) {
		t.Error("inside: wrong edge handling")
	}
}

func TestHeadingRune(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '^'},
		{math.Pi / 2, '>'},
		{math.Pi, 'v'},
		{-math.Pi / 2, '<'},
		{3 * math.Pi / 2, '<'},
		{0.3, '^'},
	}
	for _, tt := range tests {
		if got := headingRune(tt.yaw); got != tt.want {
			t.Errorf("headingRune(%v): got %q, want %q", tt.yaw, got, tt.want)
		}
	}
}

func TestStaminaBar(t *testing.T) {
	tests := []struct {
		fill float64
		want string
	}{
		{1, "[" + strings.Repeat("#", 20) + "]"},
		{0, "[" + strings.Repeat("-", 20) + "]"},
		{0.5, "[" + strings.Repeat("#", 10) + strings.Repeat("-", 10) + "]"},
		{1.7, "[" + strings.Repeat("#", 20) + "]"},
	}
	for _, tt := range tests {
		if got := staminaBar(tt.fill); got != tt.want {
			t.Errorf("staminaBar(%v): got %q, want %q", tt.fill, got, tt.want)
		}
	}
}

func TestPlatformRune(t *testing.T) {
	if platformRune(0) != '.' || platformRune(2) != '░' || platformRune(8) != '▒' || platformRune(20) != '▓' {
		t.Error("platformRune: unexpected shading")
	}
}

// rowText 读取模拟屏幕的一行
func rowText(screen tcell.SimulationScreen, y, cols int) string {
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawFrame(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	s := newTestSim(t)
	drawFrame(screen, s.world)

	mapRows := 24 - hudRows
	if r, _, _, _ := screen.GetContent(40, mapRows/2); r != '^' {
		t.Errorf("player glyph: got %q, want '^'", r)
	}
	if hud := rowText(screen, mapRows, 80); !strings.Contains(hud, "Keys 0/2") || !strings.Contains(hud, "Battery 100%") {
		t.Errorf("HUD row: got %q", hud)
	}
	if status := rowText(screen, mapRows+2, 80); !strings.HasPrefix(status, "wasd/arrows move") {
		t.Errorf("status row: got %q", status)
	}
}

func TestBatteryStyle(t *testing.T) {
	tests := []struct {
		battery float64
		want    tcell.Style
	}{
		{100, styleBattery},
		{lowBattery, styleBattery},
		{lowBattery - 0.5, styleLowBattery},
		{0, styleLowBattery},
	}
	for _, tt := range tests {
		if got := batteryStyle(tt.battery); got != tt.want {
			t.Errorf("batteryStyle(%v): got %v, want %v", tt.battery, got, tt.want)
		}
	}
}

func TestDrawFrameLowBattery(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	s := newTestSim(t)
	mapRows := 24 - hudRows
	batteryStyleAt := func() tcell.Style {
		drawFrame(screen, s.world)
		col := strings.Index(rowText(screen, mapRows, 80), "Battery ") + len("Battery ")
		_, _, style, _ := screen.GetContent(col, mapRows)
		return style
	}

	if got := batteryStyleAt(); got != styleBattery {
		t.Errorf("full battery style: got %v, want %v", got, styleBattery)
	}

	fl, ok := ecs.GetComponent[*components.FlashlightComponent](s.world.EntityManager(), s.world.Player())
	if !ok {
		t.Fatal("player flashlight missing")
	}
	fl.Battery = 5
	if got := batteryStyleAt(); got != styleLowBattery {
		t.Errorf("low battery style: got %v, want %v", got, styleLowBattery)
	}
}

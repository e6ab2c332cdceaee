package modules

import "testing"

func newTestMenu(selected *[]string) *MenuList {
	add := func(name string) func() {
		return func() { *selected = append(*selected, name) }
	}
	return NewMenuList([]MenuItem{
		{Label: StaticLabel("A"), OnSelect: add("A")},
		{Label: StaticLabel("B"), OnSelect: add("B"), OnAdjust: func(dir int) {
			if dir > 0 {
				*selected = append(*selected, "B+")
			} else {
				*selected = append(*selected, "B-")
			}
		}},
		{Label: StaticLabel("C"), OnSelect: add("C")},
	}, 400, 100)
}

// farAway 远离所有菜单项的指针位置
var farAway = MenuInput{X: -1000, Y: -1000}

func TestMenuListKeyboardNavigation(t *testing.T) {
	var got []string
	m := newTestMenu(&got)

	in := farAway
	in.Up = true
	m.Update(in)
	if m.Selected() != 2 {
		t.Errorf("Up from top: got %d, want 2", m.Selected())
	}

	in = farAway
	in.Down = true
	m.Update(in)
	if m.Selected() != 0 {
		t.Errorf("Down from bottom: got %d, want 0", m.Selected())
	}

	m.Update(in)
	in = farAway
	in.Confirm = true
	m.Update(in)
	if len(got) != 1 || got[0] != "B" {
		t.Errorf("Confirm: got %v, want [B]", got)
	}
}

func TestMenuListAdjust(t *testing.T) {
	var got []string
	m := newTestMenu(&got)

	// A 没有 OnAdjust
	in := farAway
	in.Right = true
	m.Update(in)
	if len(got) != 0 {
		t.Errorf("Adjust without handler: got %v, want none", got)
	}

	down := farAway
	down.Down = true
	m.Update(down)
	m.Update(in)
	left := farAway
	left.Left = true
	m.Update(left)
	if len(got) != 2 || got[0] != "B+" || got[1] != "B-" {
		t.Errorf("Adjust: got %v, want [B+ B-]", got)
	}
}

func TestMenuListMouse(t *testing.T) {
	var got []string
	clicks := 0
	m := newTestMenu(&got)
	m.SetOnActivate(func() { clicks++ })

	x, y, w, h := m.ItemRect(2)
	px, py := int(x+w/2), int(y+h/2)

	if i, ok := m.ItemAt(px, py); !ok || i != 2 {
		t.Errorf("ItemAt: got (%d, %v), want (2, true)", i, ok)
	}
	if _, ok := m.ItemAt(int(x-1), py); ok {
		t.Error("ItemAt left of item: got hit, want miss")
	}

	// 悬停即选中
	m.Update(MenuInput{X: px, Y: py})
	if m.Selected() != 2 {
		t.Errorf("Hover: got %d, want 2", m.Selected())
	}
	if len(got) != 0 {
		t.Errorf("Hover should not select, got %v", got)
	}

	m.Update(MenuInput{X: px, Y: py, Clicked: true})
	if len(got) != 1 || got[0] != "C" {
		t.Errorf("Click: got %v, want [C]", got)
	}
	if clicks != 1 {
		t.Errorf("Activate callback: got %d, want 1", clicks)
	}
}

func TestMenuListEmpty(t *testing.T) {
	m := NewMenuList(nil, 0, 0)
	m.Update(MenuInput{Down: true, Confirm: true})
	if m.Len() != 0 || m.Selected() != 0 {
		t.Errorf("Empty menu: got len=%d selected=%d", m.Len(), m.Selected())
	}
}

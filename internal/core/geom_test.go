package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestAbsSign(t *testing.T) {
	tests := []struct {
		in, abs, sign int
	}{
		{5, 5, 1},
		{-5, 5, -1},
		{0, 0, 0},
	}

	for _, tc := range tests {
		if got := Abs(tc.in); got != tc.abs {
			t.Errorf("Abs(%d) = %d, expected %d", tc.in, got, tc.abs)
		}
		if got := Sign(tc.in); got != tc.sign {
			t.Errorf("Sign(%d) = %d, expected %d", tc.in, got, tc.sign)
		}
	}
}

func TestBlockColor(t *testing.T) {
	for i := 1; i <= BlockColorCount; i++ {
		c := BlockColor(i)
		if int(c) != i || !c.IsBlock() {
			t.Errorf("BlockColor(%d) = %d, expected block color %d", i, c, i)
		}
	}
	if BlockColor(0) != ColorDefault || BlockColor(8) != ColorDefault {
		t.Error("out-of-range block indices should map to ColorDefault")
	}
	if ColorGray.IsBlock() || ColorDefault.IsBlock() {
		t.Error("chrome colors must not be block colors")
	}
}

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionRotateCW)

	if len(f.Actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(f.Actions))
	}
	if f.Actions[0] != ActionLeft || f.Actions[1] != ActionLeft || f.Actions[2] != ActionRotateCW {
		t.Errorf("unexpected order: %v", f.Actions)
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Actions) != 0 {
		t.Error("Clear() should empty the frame")
	}
	if len(clone.Actions) != 3 {
		t.Error("Clone() should not share storage with the original")
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionNone; a <= ActionQuit; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("Jump"); ok {
		t.Error("unknown action names should not parse")
	}
}

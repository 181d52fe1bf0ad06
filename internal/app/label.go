package app

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is a block of text drawn on a dark box
type Label struct {
	Text        string
	Position    rl.Vector2 // top-left corner of the box
	TextColor   rl.Color
	BorderColor rl.Color
	Shadow      bool
}

// Draw renders the label and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	if l.Text == "" {
		return rl.Rectangle{X: l.Position.X, Y: l.Position.Y}
	}

	lines := strings.Split(l.Text, "\n")
	lineHeight := fontSize * 1.25

	var width float32
	for _, line := range lines {
		width = max(width, rl.MeasureTextEx(font, line, fontSize, 1).X)
	}

	rect := rl.Rectangle{
		X:      l.Position.X,
		Y:      l.Position.Y,
		Width:  width + 2*padding,
		Height: lineHeight*float32(len(lines)) + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 200))
	if l.BorderColor.A > 0 {
		rl.DrawRectangleLinesEx(rect, 1, l.BorderColor)
	}

	for i, line := range lines {
		pos := rl.Vector2{X: rect.X + padding, Y: rect.Y + padding + float32(i)*lineHeight}
		if l.Shadow {
			rl.DrawTextEx(font, line, rl.Vector2{X: pos.X + 1, Y: pos.Y + 1}, fontSize, 1, rl.Black)
		}
		rl.DrawTextEx(font, line, pos, fontSize, 1, l.TextColor)
	}

	return rect
}

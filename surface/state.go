// Package surface provides threeofnine.Surface implementations for images,
// bit matrices, gg canvases and PDF content streams, plus a Recorder for
// tests and previews.
//
// Every surface keeps its own pen and fill colors on a stack. SaveState
// pushes both, RestoreState pops them, and a RestoreState without a matching
// SaveState is ignored.
package surface

import "image/color"

type paint struct {
	pen  color.Color
	fill color.Color
}

type stateStack struct {
	cur   paint
	saved []paint
}

func newStateStack(pen color.Color) stateStack {
	if pen == nil {
		pen = color.Black
	}
	return stateStack{cur: paint{pen: pen, fill: pen}}
}

func (s *stateStack) push() {
	s.saved = append(s.saved, s.cur)
}

// pop reports false when there was nothing to restore.
func (s *stateStack) pop() bool {
	n := len(s.saved)
	if n == 0 {
		return false
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
	return true
}

func (s *stateStack) depth() int { return len(s.saved) }

// isDark reports whether c would print as a bar on a monochrome device.
func isDark(c color.Color) bool {
	if _, _, _, a := c.RGBA(); a < 0x8000 {
		return false
	}
	return color.GrayModel.Convert(c).(color.Gray).Y < 0x80
}

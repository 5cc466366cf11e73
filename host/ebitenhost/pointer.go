// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenhost

import "github.com/gogpu/vib3"

// mouseState is one tick of polled mouse input.
type mouseState struct {
	x, y         float64
	wheel        float64
	leftPressed  bool
	rightPressed bool
	released     bool
}

// logicalCursor converts a cursor position on the device-resolution screen
// Layout asks for into logical pixels.
func logicalCursor(x, y int, ratio float64) (float64, float64) {
	if ratio <= 0 {
		ratio = 1
	}
	return float64(x) / ratio, float64(y) / ratio
}

// pointerTracker turns polled mouse state into pointer events.
type pointerTracker struct {
	down         bool
	lastX, lastY float64
}

func (p *pointerTracker) events(m mouseState) []vib3.PointerEvent {
	var out []vib3.PointerEvent
	switch {
	case m.leftPressed || m.rightPressed:
		button := vib3.ButtonPrimary
		if !m.leftPressed {
			button = vib3.ButtonSecondary
		}
		p.down = true
		out = append(out, vib3.PointerEvent{Kind: vib3.PointerDown, Button: button, X: m.x, Y: m.y})
	case p.down && (m.x != p.lastX || m.y != p.lastY):
		out = append(out, vib3.PointerEvent{Kind: vib3.PointerMove, X: m.x, Y: m.y})
	}
	if m.released && p.down {
		p.down = false
		out = append(out, vib3.PointerEvent{Kind: vib3.PointerUp, X: m.x, Y: m.y})
	}
	if m.wheel != 0 {
		// ebiten reports scrolling up as positive
		out = append(out, vib3.PointerEvent{Kind: vib3.PointerWheel, X: m.x, Y: m.y, DeltaY: -m.wheel})
	}
	p.lastX, p.lastY = m.x, m.y
	return out
}

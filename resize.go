package vib3

import "math"

// DisplaySize returns the backing size a surface presented at the given
// client size needs at ratio device pixels per logical pixel.
func DisplaySize(clientW, clientH, ratio float64) (width, height int) {
	return int(math.Floor(clientW * ratio)), int(math.Floor(clientH * ratio))
}

// NeedsResize reports whether a surface with the given backing size must be
// resized to match its client size at ratio.
func NeedsResize(s Surface, ratio float64) (width, height int, resize bool) {
	cw, ch := s.ClientSize()
	bw, bh := s.BackingSize()
	width, height = DisplaySize(cw, ch, ratio)
	return width, height, width != bw || height != bh
}

// resizeRendererToDisplaySize matches the backing size to the presented
// size and reports whether it changed. An empty client rect, e.g. a
// minimised window, keeps the current size.
func (v *Vib3) resizeRendererToDisplaySize() bool {
	s := v.renderer.Surface()
	w, h, resize := NeedsResize(s, v.host.PixelRatio())
	if !resize || w <= 0 || h <= 0 {
		return false
	}
	v.renderer.SetSize(w, h, false)
	v.logger().Debug("vib3: renderer resized", "width", w, "height", h)
	return true
}

// updateCameraAspects gives every perspective camera the client aspect and
// recomputes all projections.
func (v *Vib3) updateCameraAspects() {
	cw, ch := v.renderer.Surface().ClientSize()
	for _, cam := range v.cameras {
		if pc, ok := cam.(PerspectiveCamera); ok && ch > 0 {
			pc.SetAspect(float32(cw / ch))
		}
		cam.UpdateProjectionMatrix()
	}
}

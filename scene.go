package vib3

// Scene holds what a frame draws: background, fog, and a flat list of
// drawables in insertion order.
//
// Background nil means no background: the renderer falls back to its clear
// colour. Fog nil disables fog.
type Scene struct {
	Background *Color
	Fog        Fog

	objects []Drawable
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends drawables to the scene. Nil values are skipped.
func (s *Scene) Add(objs ...Drawable) {
	for _, o := range objs {
		if o != nil {
			s.objects = append(s.objects, o)
		}
	}
}

// Remove deletes the first occurrence of obj and reports whether it was found.
func (s *Scene) Remove(obj Drawable) bool {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Objects returns the drawables in insertion order.
// The slice is owned by the scene.
func (s *Scene) Objects() []Drawable {
	return s.objects
}

// SetBackground sets the background colour.
func (s *Scene) SetBackground(c Color) {
	s.Background = &c
}

// BackgroundColor returns the background colour, or 0 when there is none.
func (s *Scene) BackgroundColor() Color {
	if s.Background == nil {
		return 0
	}
	return *s.Background
}

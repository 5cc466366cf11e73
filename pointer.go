package vib3

// PointerKind is the kind of a PointerEvent.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerWheel
)

// String returns the kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// PointerButton identifies the button of a drag.
type PointerButton int

const (
	// ButtonPrimary drags rotate.
	ButtonPrimary PointerButton = iota
	// ButtonSecondary drags pan.
	ButtonSecondary
)

// PointerEvent is host pointer input in logical pixels of the surface.
type PointerEvent struct {
	Kind   PointerKind
	Button PointerButton
	X, Y   float64

	// DeltaY is the wheel delta; negative scrolls up.
	DeltaY float64
}

// wheelStep is the dolly factor of one wheel notch.
const wheelStep = 0.95

type pointerState struct {
	captured     *binding
	button       PointerButton
	lastX, lastY float64
}

// DispatchPointer routes pointer input to the orbit controls whose view
// contains the pointer. A press captures those controls until release, so
// a drag keeps going when the pointer leaves the view. It reports whether
// any controls consumed the event.
func (v *Vib3) DispatchPointer(e PointerEvent) bool {
	switch e.Kind {
	case PointerDown:
		b := v.bindingAt(e.X, e.Y)
		if b == nil {
			return false
		}
		v.pointer = pointerState{captured: b, button: e.Button, lastX: e.X, lastY: e.Y}
		return true

	case PointerMove:
		b := v.pointer.captured
		if b == nil {
			return false
		}
		dx, dy := e.X-v.pointer.lastX, e.Y-v.pointer.lastY
		v.pointer.lastX, v.pointer.lastY = e.X, e.Y
		h := b.view.BoundingRect().Height()
		if v.pointer.button == ButtonPrimary {
			b.controls.Rotate(dx, dy, h)
		} else {
			b.controls.Pan(dx, dy, h)
		}
		return true

	case PointerUp:
		if v.pointer.captured == nil {
			return false
		}
		v.pointer = pointerState{}
		return true

	case PointerWheel:
		b := v.bindingAt(e.X, e.Y)
		if b == nil || e.DeltaY == 0 {
			return false
		}
		if e.DeltaY < 0 {
			b.controls.Dolly(wheelStep)
		} else {
			b.controls.Dolly(1 / wheelStep)
		}
		return true
	}
	return false
}

// bindingAt returns the live controls whose view contains (x, y).
func (v *Vib3) bindingAt(x, y float64) *binding {
	candidates := []*binding{v.controls}
	if v.views != nil {
		candidates = append(candidates, v.views.controls)
	}
	for _, b := range candidates {
		if b == nil || b.controls.Disposed() {
			continue
		}
		if b.view.BoundingRect().Contains(x, y) {
			return b
		}
	}
	return nil
}

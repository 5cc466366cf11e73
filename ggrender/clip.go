// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import "cogentcore.org/core/math32"

// clipDepth clips the camera-space segment a-b to near <= z <= far. It
// reports false when no part of the segment lies in range.
func clipDepth(a, b math32.Vector3, near, far float32) (math32.Vector3, math32.Vector3, bool) {
	if (a.Z < near && b.Z < near) || (a.Z > far && b.Z > far) {
		return a, b, false
	}
	if a.Z < near {
		a = atDepth(a, b, near)
	} else if a.Z > far {
		a = atDepth(a, b, far)
	}
	if b.Z < near {
		b = atDepth(b, a, near)
	} else if b.Z > far {
		b = atDepth(b, a, far)
	}
	return a, b, true
}

// atDepth returns the point on p-q where z equals depth. p and q must lie on
// opposite sides of depth.
func atDepth(p, q math32.Vector3, depth float32) math32.Vector3 {
	t := (depth - p.Z) / (q.Z - p.Z)
	return p.Add(q.Sub(p).MulScalar(t))
}

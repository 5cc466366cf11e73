// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import "github.com/gogpu/gg"

// Target owns the gg.Context a Renderer draws into.
//
// *ggcanvas.Canvas satisfies Target, so a gogpu window can present the
// frames directly.
type Target interface {
	Context() *gg.Context
	Resize(width, height int) error
}

// contextTarget is the default Target: an offscreen gg.Context.
type contextTarget struct {
	dc *gg.Context
}

func newContextTarget(width, height int) *contextTarget {
	return &contextTarget{dc: gg.NewContext(width, height)}
}

func (t *contextTarget) Context() *gg.Context { return t.dc }

func (t *contextTarget) Resize(width, height int) error {
	return t.dc.Resize(width, height)
}

func (t *contextTarget) Close() error {
	return t.dc.Close()
}

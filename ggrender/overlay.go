// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// overlay draws frame counters in the top-left corner.
type overlay struct {
	face    text.Face
	size    float64
	printer *message.Printer
}

func newOverlay(size float64) (*overlay, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggrender: load overlay font: %w", err)
	}
	return &overlay{
		face:    src.Face(size),
		size:    size,
		printer: message.NewPrinter(language.English),
	}, nil
}

// label formats the counters with grouped digits.
func (o *overlay) label(s FrameStats) string {
	return o.printer.Sprintf("renders %d  segments %d  culled %d", s.Renders, s.Segments, s.Culled)
}

func (o *overlay) draw(dc *gg.Context, s FrameStats) {
	dc.Push()
	defer dc.Pop()
	dc.ResetClip()

	label := o.label(s)
	dc.SetFont(o.face)
	w, _ := dc.MeasureString(label)
	pad := o.size / 2

	dc.SetColor(gg.RGBA2(0, 0, 0, 0.6).Color())
	dc.DrawRectangle(0, 0, w+2*pad, o.size+2*pad)
	if err := dc.Fill(); err != nil {
		return
	}
	dc.SetColor(gg.RGB(1, 1, 1).Color())
	dc.DrawString(label, pad, pad+o.size)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	_ "embed"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/vib3"
)

//go:embed shaders/fog.wgsl
var fogShaderWGSL string

// MaxSize is the largest backing dimension the renderer accepts.
const MaxSize = 16384

var (
	shaderOnce sync.Once
	shaderOK   bool
)

// shaderToolchain reports whether the fog shader compiles to SPIR-V. The
// result is computed once per process.
func shaderToolchain() bool {
	shaderOnce.Do(func() {
		spirv, err := naga.Compile(fogShaderWGSL)
		if err != nil {
			vib3.Logger().Debug("ggrender: fog shader does not compile", "err", err)
			return
		}
		shaderOK = len(spirv) > 0
	})
	return shaderOK
}

// Capabilities reports the rasterization backend and what it supports.
// Backend is the name of the registered gg GPU accelerator, or "software".
func (r *Renderer) Capabilities() vib3.Capabilities {
	backend := "software"
	if a := gg.Accelerator(); a != nil {
		backend = a.Name()
	}
	return vib3.Capabilities{
		Backend:           backend,
		Format:            gputypes.TextureFormatRGBA8Unorm,
		MaxSize:           MaxSize,
		ScissorTest:       true,
		ShaderCompilation: shaderToolchain(),
	}
}

// Package vib3 assembles a real-time 3D view from a renderer, a scene, a
// set of cameras and an animation loop, configured through chained calls.
//
// # Overview
//
// vib3 is a convenience layer. It does not rasterize anything itself: a
// Renderer (see package ggrender for one built on gogpu/gg) draws the
// Scene, and a Host (see host/headless, host/ebitenhost, host/gogpuhost)
// supplies the window geometry and the per-frame refresh signal.
//
// # Quick Start
//
//	r, _ := ggrender.New(win)
//	cam := camera.NewPerspective(45, 16.0/9, 0.1, 1000)
//	cam.SetPosition(math32.Vec3(0, 20, 40))
//	cam.LookAt(math32.Vec3(0, 0, 0))
//
//	v := vib3.Init(r, host).
//	    WithCameras(cam).
//	    EnableFog().
//	    EnableOrbitControlsFor(cam, math32.Vec3(0, 0, 0)).
//	    Animate()
//
// # Frames
//
// Each frame matches the renderer's backing size to the presented size,
// runs the animations in insertion order, asks the camera supplier which
// camera to use and renders. With split view enabled the surface is cut
// into two halves: the left one renders through the active camera, the
// right one through a secondary camera that shows the active camera's
// helper.
//
// # Coordinate Systems
//
// Rect values are in logical pixels, origin top-left, as a layout engine
// reports them. Viewport values are in device pixels, origin bottom-left,
// as scissor and viewport state expects them. ScissorForElement converts
// between the two.
//
// # Concurrency
//
// A Vib3 belongs to the goroutine that runs the host's frame callbacks.
// Logging via SetLogger is safe from any goroutine.
package vib3

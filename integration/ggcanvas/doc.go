// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas renders charts with the gg 2D graphics library.
//
// Canvas implements linechart.Canvas on top of a gg.Context. It keeps
// separate fill and stroke colors, resolves font sizes to cached gg text
// faces, and maps canvas-style text alignment onto anchored strings.
// The data flow is:
//
//	linechart.Chart (draw calls) -> Canvas -> gg.Context -> image.RGBA / PNG
//
// # Usage
//
// Standalone, rendering to an image:
//
//	cv, err := ggcanvas.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	defer cv.Close()
//
//	if err := chart.Draw(cv); err != nil {
//	    return err
//	}
//	return cv.SavePNG("chart.png")
//
// Inside a HUD that already owns a gg.Context:
//
//	cv, _ := ggcanvas.Wrap(frame.Context())
//	_ = chart.Draw(cv)
//
// When the host is a gogpu window, ShareDevice hands the window's GPU device
// to gg's accelerator so charts do not spin up a second device.
//
// # Fonts
//
// Text uses Go Regular unless WithFont or WithFontSource is given.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use.
package ggcanvas

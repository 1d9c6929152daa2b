/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders charts to PNG images and PDF sheets. The renderings
// mirror what the editor canvas shows: filled button rectangles with a 1px
// border and the button name centered inside.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"chartboard/internal/domain"
	"chartboard/internal/storage"
)

// PNGOptions controls PNG export behavior.
// - Scale: pixels per canvas unit, defaults to 1 when <= 0
// - Background: canvas background, defaults to white when fully zero
type PNGOptions struct {
	Scale      float64
	Background domain.Color
}

// ExportChartPNG renders one chart to a PNG file. Relative outDir paths are
// resolved under the workspace's exports folder; the file is named
// chart-<id>.png.
func ExportChartPNG(h *storage.Handle, chartID, outDir string, opt PNGOptions) (string, error) {
	if h == nil {
		return "", fmt.Errorf("workspace handle is nil")
	}
	c := h.Workspace.Chart(chartID)
	if c == nil {
		return "", fmt.Errorf("%w: %s", storage.ErrChartNotFound, chartID)
	}

	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}
	bg := opt.Background
	if bg.R == 0 && bg.G == 0 && bg.B == 0 && bg.A == 0 {
		bg = domain.Color{R: 255, G: 255, B: 255, A: 255}
	}

	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(h.Root, "exports", outDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure out dir: %w", err)
	}

	pixW := int(math.Round(c.CanvasWidth * scale))
	pixH := int(math.Round(c.CanvasHeight * scale))
	img := image.NewRGBA(image.Rect(0, 0, pixW, pixH))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: toRGBA(bg)}, image.Point{}, draw.Src)

	// Slice order is stacking order: earlier buttons are painted first.
	for _, b := range c.Buttons {
		x0 := int(math.Round(b.X * scale))
		y0 := int(math.Round(b.Y * scale))
		x1 := x0 + int(math.Round(b.Width*scale)) - 1
		y1 := y0 + int(math.Round(b.Height*scale)) - 1
		fillRect(img, x0, y0, x1, y1, toRGBA(b.Fill))
		strokeRect(img, x0, y0, x1, y1, color.RGBA{0, 0, 0, 255})
		drawCenteredLabel(img, b.Name, x0, y0, x1, y1)
	}

	name := filepath.Join(outDir, fmt.Sprintf("chart-%s.png", c.ID))
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close png: %w", err)
	}
	return name, nil
}

// ExportAllPNG renders every chart in the workspace; it returns the written
// file paths.
func ExportAllPNG(h *storage.Handle, outDir string, opt PNGOptions) ([]string, error) {
	if h == nil {
		return nil, fmt.Errorf("workspace handle is nil")
	}
	var out []string
	for i := range h.Workspace.Charts {
		p, err := ExportChartPNG(h, h.Workspace.Charts[i].ID, outDir, opt)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, nil
}

func toRGBA(c domain.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// drawCenteredLabel renders text centered in the rect using the deterministic
// Face7x13 bitmap face. Labels wider than the button are skipped.
func drawCenteredLabel(img *image.RGBA, text string, x0, y0, x1, y1 int) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	if w > x1-x0 {
		return
	}
	cx := x0 + (x1-x0-w)/2
	cy := y0 + (y1-y0)/2 + face.Metrics().Ascent.Ceil()/2
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{0, 0, 0, 255}),
		Face: face,
		Dot:  fixed.P(cx, cy),
	}
	d.DrawString(text)
}

// strokeRect draws a 1px axis-aligned rectangle border inclusive of endpoints.
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, col)
		img.SetRGBA(x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, col)
		img.SetRGBA(x1, y, col)
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

// Constraint enforcement shared by the drag and resize branches of the
// interaction machine. Both functions are deterministic and side-effect-free,
// so replaying the last pointer position yields identical geometry.
//
// The resize order matters: size floor, then position from the anchored
// opposite edge, then a final size reclamp against the clamped position. This
// is what keeps a rectangle inside the canvas even during a two-axis corner
// resize with the pointer far outside the bounds.

// ClampMove returns r repositioned so it lies fully inside the canvas; width
// and height are unchanged. If the canvas is smaller than the rectangle on an
// axis the position pins to 0 on that axis.
func ClampMove(r Rect, canvas Size) Rect {
	maxX := canvas.W - r.W
	maxY := canvas.H - r.H
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	r.X = clamp(r.X, 0, maxX)
	r.Y = clamp(r.Y, 0, maxY)
	return r
}

// Resize recomputes the edges of r selected by dir from the canvas-local
// pointer p, keeping the opposite edge anchored, flooring each axis at
// minSize, and clamping the result into the canvas.
func Resize(r Rect, dir Zone, p Pt, canvas Size, minSize float32) Rect {
	switch {
	case dir.East():
		w := p.X - r.X
		if w < minSize {
			w = minSize
		}
		if r.X+w > canvas.W {
			w = canvas.W - r.X
		}
		r.W = w
	case dir.West():
		right := r.X + r.W
		w := right - p.X
		if w < minSize {
			w = minSize
		}
		x := right - w
		if x < 0 {
			x = 0
			w = right
		}
		if x+w > canvas.W {
			w = canvas.W - x
		}
		r.X, r.W = x, w
	}

	switch {
	case dir.South():
		h := p.Y - r.Y
		if h < minSize {
			h = minSize
		}
		if r.Y+h > canvas.H {
			h = canvas.H - r.Y
		}
		r.H = h
	case dir.North():
		bottom := r.Y + r.H
		h := bottom - p.Y
		if h < minSize {
			h = minSize
		}
		y := bottom - h
		if y < 0 {
			y = 0
			h = bottom
		}
		if y+h > canvas.H {
			h = canvas.H - y
		}
		r.Y, r.H = y, h
	}
	return r
}

/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

// Viewport maps device-space pointer coordinates onto canvas-local ones.
// Origin is the canvas surface's current on-screen top-left corner, which can
// change between events (scrolling, window moves), so callers build a fresh
// Viewport per event rather than caching one.
type Viewport struct {
	Origin Pt
	Scale  float32 // 1 for the editor; viewer mode uses the fit scale
}

// ToCanvas converts a device-space point into canvas-local coordinates.
func (v Viewport) ToCanvas(device Pt) Pt {
	s := v.Scale
	if s == 0 {
		s = 1
	}
	return Pt{X: (device.X - v.Origin.X) / s, Y: (device.Y - v.Origin.Y) / s}
}

// ToDevice converts a canvas-local point back into device space.
func (v Viewport) ToDevice(canvas Pt) Pt {
	s := v.Scale
	if s == 0 {
		s = 1
	}
	return Pt{X: canvas.X*s + v.Origin.X, Y: canvas.Y*s + v.Origin.Y}
}

/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package viewer

import "chartboard/internal/geom"

// Fit computes the viewport that letterboxes a chart canvas into the given
// on-screen area: uniform scale preserving aspect ratio, centered on the
// unused axis. The result feeds geom.Viewport.ToCanvas for pointer input and
// ToDevice for drawing.
func Fit(canvas geom.Size, area geom.Size) geom.Viewport {
	if canvas.W <= 0 || canvas.H <= 0 || area.W <= 0 || area.H <= 0 {
		return geom.Viewport{Scale: 1}
	}
	sx := area.W / canvas.W
	sy := area.H / canvas.H
	s := sx
	if sy < s {
		s = sy
	}
	return geom.Viewport{
		Origin: geom.Pt{
			X: (area.W - canvas.W*s) / 2,
			Y: (area.H - canvas.H*s) / 2,
		},
		Scale: s,
	}
}

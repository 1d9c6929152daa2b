/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package viewer

import (
	"testing"

	"chartboard/internal/geom"
)

func TestFitWidthBound(t *testing.T) {
	v := Fit(geom.Size{W: 800, H: 500}, geom.Size{W: 400, H: 400})
	if v.Scale != 0.5 {
		t.Fatalf("scale = %v, want 0.5", v.Scale)
	}
	if v.Origin.X != 0 || v.Origin.Y != 75 {
		t.Fatalf("origin = %+v, want (0,75)", v.Origin)
	}
}

func TestFitHeightBound(t *testing.T) {
	v := Fit(geom.Size{W: 400, H: 400}, geom.Size{W: 800, H: 200})
	if v.Scale != 0.5 {
		t.Fatalf("scale = %v, want 0.5", v.Scale)
	}
	if v.Origin.X != 300 || v.Origin.Y != 0 {
		t.Fatalf("origin = %+v, want (300,0)", v.Origin)
	}
}

func TestFitDegenerateInputs(t *testing.T) {
	v := Fit(geom.Size{W: 0, H: 0}, geom.Size{W: 800, H: 600})
	if v.Scale != 1 {
		t.Fatalf("degenerate canvas should fall back to scale 1, got %v", v.Scale)
	}
}

func TestFitRoundTripsPointerInput(t *testing.T) {
	v := Fit(geom.Size{W: 800, H: 500}, geom.Size{W: 400, H: 400})
	// center of the canvas maps to the center of the letterboxed area
	center := v.ToDevice(geom.Pt{X: 400, Y: 250})
	if center.X != 200 || center.Y != 200 {
		t.Fatalf("center mapped to %+v", center)
	}
	back := v.ToCanvas(center)
	if back.X != 400 || back.Y != 250 {
		t.Fatalf("round trip drifted: %+v", back)
	}
}

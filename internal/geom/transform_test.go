/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import "testing"

func TestViewportToCanvasSubtractsOrigin(t *testing.T) {
	v := Viewport{Origin: Pt{120, 80}}
	got := v.ToCanvas(Pt{170, 100})
	if got.X != 50 || got.Y != 20 {
		t.Fatalf("got %+v, want (50,20)", got)
	}
}

func TestViewportZeroScaleDefaultsToOne(t *testing.T) {
	v := Viewport{Origin: Pt{10, 10}}
	got := v.ToCanvas(Pt{30, 30})
	if got.X != 20 || got.Y != 20 {
		t.Fatalf("got %+v, want (20,20)", got)
	}
}

func TestViewportRoundTripWithScale(t *testing.T) {
	v := Viewport{Origin: Pt{40, 25}, Scale: 0.5}
	p := Pt{300, 410}
	back := v.ToDevice(v.ToCanvas(p))
	if back.X != p.X || back.Y != p.Y {
		t.Fatalf("round trip drifted: %+v", back)
	}
}

// A moved origin changes the mapping: the transform must be rebuilt per event,
// never cached across scrolls.
func TestViewportReflectsMovedOrigin(t *testing.T) {
	device := Pt{200, 200}
	before := Viewport{Origin: Pt{0, 0}}.ToCanvas(device)
	after := Viewport{Origin: Pt{0, 120}}.ToCanvas(device)
	if before == after {
		t.Fatalf("expected different canvas points after origin change")
	}
	if after.Y != 80 {
		t.Fatalf("after.Y = %v, want 80", after.Y)
	}
}

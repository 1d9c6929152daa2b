/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import "testing"

func TestClassifyCornersTakePriority(t *testing.T) {
	w, h := float32(200), float32(100)
	cases := []struct {
		p    Pt
		want Zone
	}{
		{Pt{0, 0}, ZoneNW},
		{Pt{8, 8}, ZoneNW},
		{Pt{200, 0}, ZoneNE},
		{Pt{192, 8}, ZoneNE},
		{Pt{0, 100}, ZoneSW},
		{Pt{200, 100}, ZoneSE},
		{Pt{192, 92}, ZoneSE},
	}
	for _, c := range cases {
		if got := Classify(c.p, w, h); got != c.want {
			t.Fatalf("Classify(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestClassifySingleEdges(t *testing.T) {
	w, h := float32(200), float32(100)
	cases := []struct {
		p    Pt
		want Zone
	}{
		{Pt{100, 3}, ZoneN},
		{Pt{100, 97}, ZoneS},
		{Pt{197, 50}, ZoneE},
		{Pt{3, 50}, ZoneW},
		{Pt{100, 50}, ZoneNone},
		{Pt{9, 9}, ZoneNone},
	}
	for _, c := range cases {
		if got := Classify(c.p, w, h); got != c.want {
			t.Fatalf("Classify(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

// Within 8 units of the left edge and away from top/bottom the classification
// is west regardless of button size, as long as width/height exceed twice the
// tolerance.
func TestClassifyWestSymmetricAcrossSizes(t *testing.T) {
	for _, sz := range []Size{{17, 17}, {50, 50}, {120, 40}, {800, 500}} {
		if sz.W <= 2*EdgeTolerance || sz.H <= 2*EdgeTolerance {
			continue
		}
		p := Pt{X: 4, Y: sz.H / 2}
		if got := Classify(p, sz.W, sz.H); got != ZoneW {
			t.Fatalf("size %v: Classify(%v) = %v, want w", sz, p, got)
		}
	}
}

func TestClassifyOutsideBoxIsNone(t *testing.T) {
	if got := Classify(Pt{-1, 10}, 100, 100); got != ZoneNone {
		t.Fatalf("outside-left: got %v", got)
	}
	if got := Classify(Pt{10, 101}, 100, 100); got != ZoneNone {
		t.Fatalf("outside-bottom: got %v", got)
	}
}

func TestZoneEdgePredicates(t *testing.T) {
	if !ZoneNW.North() || !ZoneNW.West() || ZoneNW.South() || ZoneNW.East() {
		t.Fatalf("nw predicates wrong")
	}
	if !ZoneE.East() || ZoneE.North() || ZoneE.South() || ZoneE.West() {
		t.Fatalf("e predicates wrong")
	}
	if ZoneNone.North() || ZoneNone.South() || ZoneNone.East() || ZoneNone.West() {
		t.Fatalf("none predicates wrong")
	}
}

func TestZoneString(t *testing.T) {
	want := map[Zone]string{
		ZoneNone: "none", ZoneN: "n", ZoneS: "s", ZoneE: "e", ZoneW: "w",
		ZoneNE: "ne", ZoneNW: "nw", ZoneSE: "se", ZoneSW: "sw",
	}
	for z, s := range want {
		if z.String() != s {
			t.Fatalf("Zone(%d).String() = %q, want %q", z, z.String(), s)
		}
	}
}

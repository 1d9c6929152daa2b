/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

// Hit-zone classification: deciding whether a press on a button body starts a
// move or a directional resize. Pure and shared by mouse and touch paths; the
// same classification also drives the hover cursor hint.

// EdgeTolerance is the width of the resize band along each button edge, in
// canvas units.
const EdgeTolerance = 8

// Zone identifies one of the 8 directional resize handles, or ZoneNone when
// the position is in the button interior (meaning: move).
type Zone uint8

const (
	ZoneNone Zone = iota
	ZoneN
	ZoneS
	ZoneE
	ZoneW
	ZoneNE
	ZoneNW
	ZoneSE
	ZoneSW
)

func (z Zone) String() string {
	switch z {
	case ZoneN:
		return "n"
	case ZoneS:
		return "s"
	case ZoneE:
		return "e"
	case ZoneW:
		return "w"
	case ZoneNE:
		return "ne"
	case ZoneNW:
		return "nw"
	case ZoneSE:
		return "se"
	case ZoneSW:
		return "sw"
	}
	return "none"
}

// North reports whether the zone moves the top edge.
func (z Zone) North() bool { return z == ZoneN || z == ZoneNE || z == ZoneNW }

// South reports whether the zone moves the bottom edge.
func (z Zone) South() bool { return z == ZoneS || z == ZoneSE || z == ZoneSW }

// East reports whether the zone moves the right edge.
func (z Zone) East() bool { return z == ZoneE || z == ZoneNE || z == ZoneSE }

// West reports whether the zone moves the left edge.
func (z Zone) West() bool { return z == ZoneW || z == ZoneNW || z == ZoneSW }

// Classify maps a position relative to a button's own bounding box to a resize
// zone. Positions within EdgeTolerance of two adjacent edges classify as the
// corner; a single edge band classifies as that edge; everything else inside
// the box is ZoneNone. Positions outside the box are also ZoneNone.
func Classify(p Pt, w, h float32) Zone {
	if p.X < 0 || p.Y < 0 || p.X > w || p.Y > h {
		return ZoneNone
	}
	n := p.Y <= EdgeTolerance
	s := p.Y >= h-EdgeTolerance
	e := p.X >= w-EdgeTolerance
	wst := p.X <= EdgeTolerance

	switch {
	case n && wst:
		return ZoneNW
	case n && e:
		return ZoneNE
	case s && wst:
		return ZoneSW
	case s && e:
		return ZoneSE
	case n:
		return ZoneN
	case s:
		return ZoneS
	case e:
		return ZoneE
	case wst:
		return ZoneW
	}
	return ZoneNone
}

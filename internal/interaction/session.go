/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package interaction

import (
	"chartboard/internal/domain"
	"chartboard/internal/geom"
)

// Session hosts at most one in-progress drag or resize gesture against a
// chart. It owns the machine state, adapts the chart as a View, and applies
// the transition effects: geometry writes happen synchronously on every
// accepted move, the active button is raised for the session and the stacking
// order is restored when the gesture ends.
//
// The hosting surface is responsible for the settings-affordance hit target:
// presses on it must never reach Handle. All mutation goes through the single
// event-processing context, so no locking happens here.
type Session struct {
	chart *domain.Chart
	state State
	// original index of the raised button, -1 when nothing is raised
	raisedFrom int
	raisedID   string
}

// NewSession creates a session bound to the given chart.
func NewSession(chart *domain.Chart) *Session {
	return &Session{chart: chart, raisedFrom: -1}
}

// Active reports whether a gesture is in progress. Device-wide move/release
// listeners should be attached exactly while this is true.
func (s *Session) Active() bool { return s.state.Mode != ModeIdle }

// State returns the current machine state.
func (s *Session) State() State { return s.state }

// Handle feeds one canvas-local pointer event through the machine and applies
// the resulting effects to the chart. It reports whether any button geometry
// changed.
func (s *Session) Handle(ev PointerEvent) bool {
	next, effects := Step(s.state, ev, chartView{s.chart})
	s.state = next
	changed := false
	for _, e := range effects {
		switch e := e.(type) {
		case SetGeometry:
			if b := s.chart.Button(e.ID); b != nil {
				b.X = float64(e.Rect.X)
				b.Y = float64(e.Rect.Y)
				b.Width = float64(e.Rect.W)
				b.Height = float64(e.Rect.H)
				changed = true
			}
		case Raise:
			s.raise(e.ID)
		case Restore:
			s.restore()
		}
	}
	return changed
}

// raise moves the button to the end of the slice (top of the stack) and
// remembers where it came from.
func (s *Session) raise(id string) {
	for i := range s.chart.Buttons {
		if s.chart.Buttons[i].ID == id {
			b := s.chart.Buttons[i]
			s.chart.Buttons = append(s.chart.Buttons[:i], s.chart.Buttons[i+1:]...)
			s.chart.Buttons = append(s.chart.Buttons, b)
			s.raisedFrom = i
			s.raisedID = id
			return
		}
	}
}

// restore puts the raised button back at its pre-session index. If the button
// was removed mid-gesture this is a no-op.
func (s *Session) restore() {
	if s.raisedFrom < 0 || s.raisedID == "" {
		return
	}
	idx := -1
	for i := range s.chart.Buttons {
		if s.chart.Buttons[i].ID == s.raisedID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		b := s.chart.Buttons[idx]
		s.chart.Buttons = append(s.chart.Buttons[:idx], s.chart.Buttons[idx+1:]...)
		at := s.raisedFrom
		if at > len(s.chart.Buttons) {
			at = len(s.chart.Buttons)
		}
		s.chart.Buttons = append(s.chart.Buttons[:at], append([]domain.Button{b}, s.chart.Buttons[at:]...)...)
	}
	s.raisedFrom = -1
	s.raisedID = ""
}

// ZoneAt classifies the hover zone for the top-most button under p, for the
// resize-cursor hint shown while no session is active.
func ZoneAt(chart *domain.Chart, p geom.Pt) (string, geom.Zone, bool) {
	id, r, ok := chartView{chart}.ButtonAt(p)
	if !ok {
		return "", geom.ZoneNone, false
	}
	local := geom.Pt{X: p.X - r.X, Y: p.Y - r.Y}
	return id, geom.Classify(local, r.W, r.H), true
}

// chartView adapts a domain.Chart to the machine's View.
type chartView struct{ c *domain.Chart }

func (v chartView) ButtonRect(id string) (geom.Rect, bool) {
	b := v.c.Button(id)
	if b == nil {
		return geom.Rect{}, false
	}
	return buttonRect(b), true
}

func (v chartView) ButtonAt(p geom.Pt) (string, geom.Rect, bool) {
	// later buttons draw on top, so scan back to front
	for i := len(v.c.Buttons) - 1; i >= 0; i-- {
		r := buttonRect(&v.c.Buttons[i])
		if r.Contains(p) {
			return v.c.Buttons[i].ID, r, true
		}
	}
	return "", geom.Rect{}, false
}

func (v chartView) CanvasSize() geom.Size {
	return geom.Size{W: float32(v.c.CanvasWidth), H: float32(v.c.CanvasHeight)}
}

func buttonRect(b *domain.Button) geom.Rect {
	return geom.R(float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height))
}

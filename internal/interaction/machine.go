/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package interaction implements the press/move/release state machine that
// turns pointer events into button geometry updates. Mouse and touch input
// both project onto PointerEvent before reaching the machine, so there is a
// single code path for either device.
//
// The transition function Step is pure: given a state, an event and a view of
// the hosting chart it returns the next state and the effects to apply. The
// Session type in this package owns a state and applies the effects to a
// domain.Chart.
package interaction

import (
	"chartboard/internal/domain"
	"chartboard/internal/geom"
)

// Phase is the lifecycle stage of a pointer event.
type Phase uint8

const (
	// PhaseStart is a press (mouse down or first touch contact).
	PhaseStart Phase = iota
	// PhaseMove is pointer motion while engaged.
	PhaseMove
	// PhaseEnd is a release.
	PhaseEnd
	// PhaseCancel is device-initiated loss of the gesture.
	PhaseCancel
)

// PointerEvent is the unified input event. Pos is canvas-local; callers run
// the device coordinates through geom.Viewport.ToCanvas per event.
type PointerEvent struct {
	Phase Phase
	Pos   geom.Pt
}

// Mode is the machine state discriminant.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

// State is the machine state. TargetID, Dir and Offset are meaningful only
// outside ModeIdle. Offset is the vector from the press point to the target's
// top-left corner, captured once at session start and held constant.
type State struct {
	Mode     Mode
	TargetID string
	Dir      geom.Zone
	Offset   geom.Pt
}

// Idle is the initial (and terminal-per-gesture) state.
var Idle = State{}

// View is the machine's read-only window onto the hosting chart.
type View interface {
	// ButtonRect returns the current geometry of the button with the given id.
	ButtonRect(id string) (geom.Rect, bool)
	// ButtonAt returns the top-most button containing p, if any.
	ButtonAt(p geom.Pt) (id string, r geom.Rect, ok bool)
	// CanvasSize returns the current canvas dimensions.
	CanvasSize() geom.Size
}

// Effect is an output of a transition, applied by the session owner.
type Effect interface{ isEffect() }

// SetGeometry updates the target button's rectangle in the owning chart. It is
// emitted on every accepted move, so the chart is current before the next
// frame draws.
type SetGeometry struct {
	ID   string
	Rect geom.Rect
}

// Raise lifts the target button to the top of the visual stack for the
// session's duration.
type Raise struct{ ID string }

// Restore reverts the stacking order changed by Raise once the session ends.
type Restore struct{}

func (SetGeometry) isEffect() {}
func (Raise) isEffect()       {}
func (Restore) isEffect()     {}

// Step advances the machine. Presses that land on no button leave the machine
// idle. A press on a button classifies the hit zone: an edge or corner band
// starts a resize in that direction, anywhere else on the body starts a drag.
// Moves recompute geometry through the shared constraint path. End and cancel
// unconditionally return to Idle keeping the last applied geometry; a target
// that vanished mid-gesture makes moves silent no-ops until release.
func Step(st State, ev PointerEvent, v View) (State, []Effect) {
	switch ev.Phase {
	case PhaseStart:
		if st.Mode != ModeIdle {
			// Single active pointer: a second press cannot occur while the
			// move/release listeners own the device. Ignore defensively.
			return st, nil
		}
		id, r, ok := v.ButtonAt(ev.Pos)
		if !ok {
			return st, nil
		}
		local := geom.Pt{X: ev.Pos.X - r.X, Y: ev.Pos.Y - r.Y}
		offset := local
		next := State{TargetID: id, Offset: offset}
		if zone := geom.Classify(local, r.W, r.H); zone != geom.ZoneNone {
			next.Mode = ModeResizing
			next.Dir = zone
		} else {
			next.Mode = ModeDragging
		}
		return next, []Effect{Raise{ID: id}}

	case PhaseMove:
		switch st.Mode {
		case ModeDragging:
			r, ok := v.ButtonRect(st.TargetID)
			if !ok {
				return st, nil
			}
			r.X = ev.Pos.X - st.Offset.X
			r.Y = ev.Pos.Y - st.Offset.Y
			r = geom.ClampMove(r, v.CanvasSize())
			return st, []Effect{SetGeometry{ID: st.TargetID, Rect: r}}
		case ModeResizing:
			r, ok := v.ButtonRect(st.TargetID)
			if !ok {
				return st, nil
			}
			r = geom.Resize(r, st.Dir, ev.Pos, v.CanvasSize(), domain.MinButtonSize)
			return st, []Effect{SetGeometry{ID: st.TargetID, Rect: r}}
		}
		return st, nil

	case PhaseEnd, PhaseCancel:
		if st.Mode == ModeIdle {
			return st, nil
		}
		return Idle, []Effect{Restore{}}
	}
	return st, nil
}

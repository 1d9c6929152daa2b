/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package interaction

import (
	"testing"

	"chartboard/internal/domain"
	"chartboard/internal/geom"
)

func testChart() *domain.Chart {
	return &domain.Chart{
		ID:           "c1",
		Name:         "Main",
		CanvasWidth:  800,
		CanvasHeight: 500,
		Buttons: []domain.Button{
			{ID: "b1", Name: "Pump", X: 100, Y: 100, Width: 100, Height: 100},
			{ID: "b2", Name: "Valve", X: 300, Y: 200, Width: 120, Height: 60},
		},
	}
}

func TestStepPressOnBodyStartsDrag(t *testing.T) {
	ch := testChart()
	st, effects := Step(Idle, PointerEvent{Phase: PhaseStart, Pos: geom.Pt{X: 150, Y: 140}}, chartView{ch})
	if st.Mode != ModeDragging || st.TargetID != "b1" {
		t.Fatalf("unexpected state: %+v", st)
	}
	if st.Offset.X != 50 || st.Offset.Y != 40 {
		t.Fatalf("offset = %+v, want (50,40)", st.Offset)
	}
	if len(effects) != 1 {
		t.Fatalf("expected a raise effect, got %v", effects)
	}
	if r, ok := effects[0].(Raise); !ok || r.ID != "b1" {
		t.Fatalf("expected Raise{b1}, got %+v", effects[0])
	}
}

func TestStepPressOnEdgeStartsResize(t *testing.T) {
	ch := testChart()
	// 4 units inside the left edge of b1, vertically centered
	st, _ := Step(Idle, PointerEvent{Phase: PhaseStart, Pos: geom.Pt{X: 104, Y: 150}}, chartView{ch})
	if st.Mode != ModeResizing || st.Dir != geom.ZoneW {
		t.Fatalf("unexpected state: %+v", st)
	}
	// corner press
	st, _ = Step(Idle, PointerEvent{Phase: PhaseStart, Pos: geom.Pt{X: 196, Y: 196}}, chartView{ch})
	if st.Mode != ModeResizing || st.Dir != geom.ZoneSE {
		t.Fatalf("corner press: %+v", st)
	}
}

func TestStepPressOnEmptyCanvasStaysIdle(t *testing.T) {
	ch := testChart()
	st, effects := Step(Idle, PointerEvent{Phase: PhaseStart, Pos: geom.Pt{X: 700, Y: 450}}, chartView{ch})
	if st.Mode != ModeIdle || len(effects) != 0 {
		t.Fatalf("expected idle no-op, got %+v %v", st, effects)
	}
}

func TestStepSecondPressWhileActiveIgnored(t *testing.T) {
	ch := testChart()
	active := State{Mode: ModeDragging, TargetID: "b1"}
	st, effects := Step(active, PointerEvent{Phase: PhaseStart, Pos: geom.Pt{X: 310, Y: 210}}, chartView{ch})
	if st != active || len(effects) != 0 {
		t.Fatalf("second press changed state: %+v %v", st, effects)
	}
}

func TestStepMoveWhileIdleIsNoop(t *testing.T) {
	ch := testChart()
	st, effects := Step(Idle, PointerEvent{Phase: PhaseMove, Pos: geom.Pt{X: 150, Y: 150}}, chartView{ch})
	if st.Mode != ModeIdle || len(effects) != 0 {
		t.Fatalf("idle move produced output: %+v %v", st, effects)
	}
}

func TestStepDragMoveClampsToCanvas(t *testing.T) {
	ch := testChart()
	ch.Buttons[0] = domain.Button{ID: "b1", X: 770, Y: 480, Width: 50, Height: 50}
	ch.CanvasWidth, ch.CanvasHeight = 800, 500
	st := State{Mode: ModeDragging, TargetID: "b1"} // zero offset
	_, effects := Step(st, PointerEvent{Phase: PhaseMove, Pos: geom.Pt{X: 1000, Y: 1000}}, chartView{ch})
	if len(effects) != 1 {
		t.Fatalf("expected one geometry effect, got %v", effects)
	}
	g := effects[0].(SetGeometry)
	if g.Rect.X != 750 || g.Rect.Y != 450 {
		t.Fatalf("clamped to (%v,%v), want (750,450)", g.Rect.X, g.Rect.Y)
	}
}

func TestStepResizeMoveHonorsFloorAndAnchor(t *testing.T) {
	ch := testChart()
	st := State{Mode: ModeResizing, TargetID: "b1", Dir: geom.ZoneSE}
	_, effects := Step(st, PointerEvent{Phase: PhaseMove, Pos: geom.Pt{X: 50, Y: 50}}, chartView{ch})
	g := effects[0].(SetGeometry)
	if g.Rect.X != 100 || g.Rect.Y != 100 || g.Rect.W != 50 || g.Rect.H != 50 {
		t.Fatalf("got %+v, want (100,100,50,50)", g.Rect)
	}
}

func TestStepMissingTargetIsSilentNoop(t *testing.T) {
	ch := testChart()
	st := State{Mode: ModeDragging, TargetID: "gone"}
	next, effects := Step(st, PointerEvent{Phase: PhaseMove, Pos: geom.Pt{X: 10, Y: 10}}, chartView{ch})
	if next != st || len(effects) != 0 {
		t.Fatalf("expected silent no-op, got %+v %v", next, effects)
	}
	// the session still ends normally on release
	next, effects = Step(st, PointerEvent{Phase: PhaseEnd}, chartView{ch})
	if next.Mode != ModeIdle {
		t.Fatalf("release did not end session: %+v", next)
	}
	if len(effects) != 1 {
		t.Fatalf("expected restore effect, got %v", effects)
	}
}

func TestStepEndAndCancelReturnToIdleWithoutRollback(t *testing.T) {
	ch := testChart()
	for _, ph := range []Phase{PhaseEnd, PhaseCancel} {
		st := State{Mode: ModeResizing, TargetID: "b1", Dir: geom.ZoneN}
		next, _ := Step(st, PointerEvent{Phase: ph}, chartView{ch})
		if next != Idle {
			t.Fatalf("phase %v: state %+v, want Idle", ph, next)
		}
	}
	// end while idle emits nothing
	next, effects := Step(Idle, PointerEvent{Phase: PhaseEnd}, chartView{ch})
	if next != Idle || len(effects) != 0 {
		t.Fatalf("idle end produced output: %+v %v", next, effects)
	}
}

// Step never mutates the chart it views; only applied effects do.
func TestStepIsPure(t *testing.T) {
	ch := testChart()
	before := ch.Buttons[0]
	st := State{Mode: ModeDragging, TargetID: "b1", Offset: geom.Pt{X: 10, Y: 10}}
	Step(st, PointerEvent{Phase: PhaseMove, Pos: geom.Pt{X: 400, Y: 300}}, chartView{ch})
	if ch.Buttons[0] != before {
		t.Fatalf("Step mutated the chart: %+v", ch.Buttons[0])
	}
}

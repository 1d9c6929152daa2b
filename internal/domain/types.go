/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

// This file defines the core data model for Chartboard: named charts whose
// canvases host positioned, sized, colored, optionally-linked buttons. The
// structures serialize to a human-readable JSON manifest.

// Geometry limits, in canvas units.
const (
	// MinButtonSize is the floor for button width and height after any
	// interactive drag or resize completes.
	MinButtonSize = 50
	// MinCanvasSize is the floor applied when canvas dimensions are committed
	// from the dimension fields.
	MinCanvasSize = 100
)

// Defaults for newly added buttons.
const (
	DefaultButtonWidth  = 120
	DefaultButtonHeight = 40
	DefaultButtonX      = 50
	DefaultButtonY      = 50
)

// LabelOnlyLink is the sentinel link value for buttons that do not reference a
// range.
const LabelOnlyLink = "label-only"

// ButtonRole governs what activating a button does in viewer mode.
type ButtonRole string

const (
	// RoleNormal navigates to the linked range.
	RoleNormal ButtonRole = "normal"
	// RoleLabel is decorative and non-interactive in the viewer.
	RoleLabel ButtonRole = "label"
	// RoleExit returns to the chart list; never user-linkable.
	RoleExit ButtonRole = "exit"
)

// Valid reports whether r is one of the known roles.
func (r ButtonRole) Valid() bool {
	switch r {
	case RoleNormal, RoleLabel, RoleExit:
		return true
	}
	return false
}

// Color is an RGBA fill color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Button is a positioned, sized, styled, optionally-linked rectangle on a
// chart canvas. X/Y are the top-left corner in canvas-local units.
type Button struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Fill        Color      `json:"fill"`
	Role        ButtonRole `json:"role"`
	LinkedRange string     `json:"linkedRange,omitempty"` // meaningful only for RoleNormal
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
}

// RangeRef identifies a linkable data range supplied by the range registry.
// The editor only reads ids and names; ranges are never mutated here.
type RangeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Chart is a named collection of buttons on a canvas of given dimensions.
// ButtonSeq is a monotonically increasing counter backing ID assignment, so
// ids are stable and never reused even after removals.
type Chart struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CanvasWidth  float64  `json:"canvasWidth"`
	CanvasHeight float64  `json:"canvasHeight"`
	ButtonSeq    int      `json:"buttonSeq"`
	Buttons      []Button `json:"buttons"`
}

// Workspace is the root of the manifest: all charts plus the imported range
// references available for linking.
type Workspace struct {
	Name   string     `json:"name"`
	Charts []Chart    `json:"charts"`
	Ranges []RangeRef `json:"ranges,omitempty"`
}

// Button returns a pointer to the button with the given id, or nil.
func (c *Chart) Button(id string) *Button {
	for i := range c.Buttons {
		if c.Buttons[i].ID == id {
			return &c.Buttons[i]
		}
	}
	return nil
}

// Chart returns a pointer to the chart with the given id, or nil.
func (w *Workspace) Chart(id string) *Chart {
	for i := range w.Charts {
		if w.Charts[i].ID == id {
			return &w.Charts[i]
		}
	}
	return nil
}

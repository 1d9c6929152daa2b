/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"errors"
	"fmt"
	"strings"

	"chartboard/internal/domain"
	"chartboard/internal/ranges"
)

// ErrChartNotFound is returned by chart-scoped operations when the chart id
// does not exist in the workspace.
var ErrChartNotFound = errors.New("chart not found")

// ErrButtonNotFound is returned when a button id does not exist on the chart.
var ErrButtonNotFound = errors.New("button not found")

// AddChart appends a new chart with the given name and canvas dimensions and
// returns a pointer into the workspace. Dimensions below the canvas floor are
// raised to it.
func AddChart(h *Handle, name string, canvasW, canvasH float64) (*domain.Chart, error) {
	if h == nil {
		return nil, errors.New("nil Handle")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("chart name is required")
	}
	if canvasW < domain.MinCanvasSize {
		canvasW = domain.MinCanvasSize
	}
	if canvasH < domain.MinCanvasSize {
		canvasH = domain.MinCanvasSize
	}
	id := fmt.Sprintf("chart-%d", len(h.Workspace.Charts)+1)
	for h.Workspace.Chart(id) != nil {
		id = id + "x"
	}
	h.Workspace.Charts = append(h.Workspace.Charts, domain.Chart{
		ID:           id,
		Name:         name,
		CanvasWidth:  canvasW,
		CanvasHeight: canvasH,
	})
	return &h.Workspace.Charts[len(h.Workspace.Charts)-1], nil
}

// RemoveChart deletes the chart with the given id.
func RemoveChart(h *Handle, chartID string) error {
	if h == nil {
		return errors.New("nil Handle")
	}
	for i := range h.Workspace.Charts {
		if h.Workspace.Charts[i].ID == chartID {
			h.Workspace.Charts = append(h.Workspace.Charts[:i], h.Workspace.Charts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrChartNotFound, chartID)
}

// RenameChart sets a new display name on the chart.
func RenameChart(h *Handle, chartID, name string) error {
	c, err := chartOf(h, chartID)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("chart name is required")
	}
	c.Name = name
	return nil
}

// AddButton creates a button with the standard defaults (size, position, role
// and link derived from the available ranges) and appends it on top of the
// stacking order. The returned pointer addresses the button in the workspace.
func AddButton(h *Handle, chartID string, reg ranges.Registry) (*domain.Button, error) {
	c, err := chartOf(h, chartID)
	if err != nil {
		return nil, err
	}
	c.ButtonSeq++
	b := domain.Button{
		ID:          fmt.Sprintf("%s-btn-%d", c.ID, c.ButtonSeq),
		Name:        fmt.Sprintf("Button %d", c.ButtonSeq),
		Fill:        domain.Color{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff},
		Role:        ranges.DefaultRole(reg),
		LinkedRange: ranges.DefaultLink(reg),
		X:           domain.DefaultButtonX,
		Y:           domain.DefaultButtonY,
		Width:       domain.DefaultButtonWidth,
		Height:      domain.DefaultButtonHeight,
	}
	c.Buttons = append(c.Buttons, b)
	return &c.Buttons[len(c.Buttons)-1], nil
}

// UpdateButton replaces the stored button with the same id. Used by the
// property dialog on confirm: the dialog edits a draft copy and only this call
// makes it visible.
func UpdateButton(h *Handle, chartID string, b domain.Button) error {
	c, err := chartOf(h, chartID)
	if err != nil {
		return err
	}
	if !b.Role.Valid() {
		return fmt.Errorf("invalid role %q", b.Role)
	}
	for i := range c.Buttons {
		if c.Buttons[i].ID == b.ID {
			c.Buttons[i] = b
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrButtonNotFound, b.ID)
}

// RemoveButton deletes the button with the given id. Also covers cancelling a
// freshly added button before its first confirm.
func RemoveButton(h *Handle, chartID, buttonID string) error {
	c, err := chartOf(h, chartID)
	if err != nil {
		return err
	}
	for i := range c.Buttons {
		if c.Buttons[i].ID == buttonID {
			c.Buttons = append(c.Buttons[:i], c.Buttons[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrButtonNotFound, buttonID)
}

// SetCanvasSize commits new canvas dimensions, applying the floor. Existing
// buttons are left untouched even when they now extend past the canvas; the
// next drag or resize of such a button clamps it back in.
func SetCanvasSize(h *Handle, chartID string, w, hgt float64) error {
	c, err := chartOf(h, chartID)
	if err != nil {
		return err
	}
	if w < domain.MinCanvasSize {
		w = domain.MinCanvasSize
	}
	if hgt < domain.MinCanvasSize {
		hgt = domain.MinCanvasSize
	}
	c.CanvasWidth = w
	c.CanvasHeight = hgt
	return nil
}

func chartOf(h *Handle, chartID string) (*domain.Chart, error) {
	if h == nil {
		return nil, errors.New("nil Handle")
	}
	c := h.Workspace.Chart(chartID)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrChartNotFound, chartID)
	}
	return c, nil
}

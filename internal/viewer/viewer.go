/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package viewer resolves button activations in play mode and computes the
// fit-to-viewport scaling for rendering a chart.
package viewer

import (
	"fmt"

	"chartboard/internal/domain"
	"chartboard/internal/ranges"
)

// ActionKind discriminates the outcome of activating a button.
type ActionKind uint8

const (
	// ActionNone means nothing happens (label buttons).
	ActionNone ActionKind = iota
	// ActionExit navigates back to the chart list.
	ActionExit
	// ActionShowRange displays the resolved range.
	ActionShowRange
	// ActionNotice surfaces a non-fatal, user-visible message; the viewer
	// stays usable.
	ActionNotice
)

// Action is the resolved outcome of a button activation.
type Action struct {
	Kind   ActionKind
	Range  domain.RangeRef // set for ActionShowRange
	Notice string          // set for ActionNotice
}

// Resolve maps a button activation to its action. Exit buttons navigate
// without any range lookup; label buttons are inert; normal buttons look up
// their linked range and produce a visible notice when the link dangles.
func Resolve(b domain.Button, reg ranges.Registry) Action {
	switch b.Role {
	case domain.RoleExit:
		return Action{Kind: ActionExit}
	case domain.RoleLabel:
		return Action{Kind: ActionNone}
	case domain.RoleNormal:
		if b.LinkedRange == "" || b.LinkedRange == domain.LabelOnlyLink {
			return Action{Kind: ActionNone}
		}
		if r, ok := reg.Lookup(b.LinkedRange); ok {
			return Action{Kind: ActionShowRange, Range: r}
		}
		return Action{
			Kind:   ActionNotice,
			Notice: fmt.Sprintf("range %q not found", b.LinkedRange),
		}
	}
	return Action{Kind: ActionNone}
}

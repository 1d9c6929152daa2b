/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package ranges supplies the linkable data ranges buttons can reference. The
// editor and viewer only read ids and display names; ranges themselves are
// owned by an external source and never mutated here.
package ranges

import "chartboard/internal/domain"

// Registry resolves range references for link pickers and viewer activation.
type Registry interface {
	// All returns the linkable ranges in a stable order.
	All() []domain.RangeRef
	// Lookup returns the range with the given id.
	Lookup(id string) (domain.RangeRef, bool)
}

// Static is an immutable in-memory Registry, typically built from the
// workspace manifest's imported range references.
type Static struct {
	refs []domain.RangeRef
	byID map[string]domain.RangeRef
}

// NewStatic copies refs into a Static registry.
func NewStatic(refs []domain.RangeRef) *Static {
	s := &Static{
		refs: append([]domain.RangeRef(nil), refs...),
		byID: make(map[string]domain.RangeRef, len(refs)),
	}
	for _, r := range s.refs {
		s.byID[r.ID] = r
	}
	return s
}

func (s *Static) All() []domain.RangeRef { return append([]domain.RangeRef(nil), s.refs...) }

func (s *Static) Lookup(id string) (domain.RangeRef, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// DefaultLink returns the link a newly added button should carry: the first
// available range id, or the label-only sentinel when none exist.
func DefaultLink(reg Registry) string {
	if all := reg.All(); len(all) > 0 {
		return all[0].ID
	}
	return domain.LabelOnlyLink
}

// DefaultRole returns the role a newly added button should carry: normal when
// any linkable range exists, label otherwise.
func DefaultRole(reg Registry) domain.ButtonRole {
	if len(reg.All()) > 0 {
		return domain.RoleNormal
	}
	return domain.RoleLabel
}

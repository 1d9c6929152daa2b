/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ranges

import (
	"testing"

	"chartboard/internal/domain"
)

func TestStaticLookup(t *testing.T) {
	reg := NewStatic([]domain.RangeRef{{ID: "R1", Name: "Sales"}, {ID: "R2", Name: "Costs"}})
	r, ok := reg.Lookup("R2")
	if !ok || r.Name != "Costs" {
		t.Fatalf("lookup R2: %+v %v", r, ok)
	}
	if _, ok := reg.Lookup("R9"); ok {
		t.Fatalf("lookup of unknown id succeeded")
	}
	if len(reg.All()) != 2 {
		t.Fatalf("All() = %v", reg.All())
	}
}

func TestDefaultsWithRanges(t *testing.T) {
	reg := NewStatic([]domain.RangeRef{{ID: "R1", Name: "Sales"}})
	if got := DefaultLink(reg); got != "R1" {
		t.Fatalf("DefaultLink = %q, want R1", got)
	}
	if got := DefaultRole(reg); got != domain.RoleNormal {
		t.Fatalf("DefaultRole = %q, want normal", got)
	}
}

func TestDefaultsWithoutRanges(t *testing.T) {
	reg := NewStatic(nil)
	if got := DefaultLink(reg); got != domain.LabelOnlyLink {
		t.Fatalf("DefaultLink = %q, want %q", got, domain.LabelOnlyLink)
	}
	if got := DefaultRole(reg); got != domain.RoleLabel {
		t.Fatalf("DefaultRole = %q, want label", got)
	}
}

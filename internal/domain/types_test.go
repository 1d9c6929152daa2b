package domain

import (
	"encoding/json"
	"testing"
)

func TestWorkspaceJSONRoundTrip(t *testing.T) {
	w := Workspace{
		Name: "RoundTrip",
		Charts: []Chart{
			{
				ID: "chart-1", Name: "Main", CanvasWidth: 800, CanvasHeight: 500, ButtonSeq: 1,
				Buttons: []Button{
					{
						ID: "chart-1-btn-1", Name: "Sales", Role: RoleNormal, LinkedRange: "R1",
						Fill: Color{R: 200, G: 200, B: 200, A: 255},
						X:    50, Y: 50, Width: 120, Height: 40,
					},
				},
			},
		},
		Ranges: []RangeRef{{ID: "R1", Name: "Sales 2025"}},
	}

	b, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Workspace
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != w.Name {
		t.Fatalf("name mismatch: got %q want %q", got.Name, w.Name)
	}
	if len(got.Charts) != 1 || len(got.Charts[0].Buttons) != 1 {
		t.Fatalf("unexpected charts/buttons structure: %+v", got)
	}
	if got.Charts[0].Buttons[0].LinkedRange != "R1" {
		t.Fatalf("linked range lost in round trip")
	}
}

func TestButtonRoleValid(t *testing.T) {
	for _, r := range []ButtonRole{RoleNormal, RoleLabel, RoleExit} {
		if !r.Valid() {
			t.Fatalf("%q should be valid", r)
		}
	}
	if ButtonRole("banner").Valid() {
		t.Fatalf("unknown role accepted")
	}
}

func TestLookupHelpers(t *testing.T) {
	w := Workspace{Charts: []Chart{{ID: "c1", Buttons: []Button{{ID: "b1"}}}}}
	c := w.Chart("c1")
	if c == nil {
		t.Fatalf("chart lookup failed")
	}
	if c.Button("b1") == nil {
		t.Fatalf("button lookup failed")
	}
	if w.Chart("nope") != nil || c.Button("nope") != nil {
		t.Fatalf("missing lookups should return nil")
	}
}

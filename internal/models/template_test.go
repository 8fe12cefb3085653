package models

import "testing"

func TestParseProjectKind(t *testing.T) {
	tests := []struct {
		answer string
		kind   ProjectKind
		ok     bool
	}{
		{"react", ProjectReact, true},
		{"React", ProjectReact, true},
		{"  REACT\n", ProjectReact, true},
		{"node", ProjectNode, true},
		{"\tNode ", ProjectNode, true},
		{"", "", false},
		{"vue", "", false},
		{"react.", "", false},
		{"node or react", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.answer, func(t *testing.T) {
			kind, ok := ParseProjectKind(tc.answer)
			if kind != tc.kind || ok != tc.ok {
				t.Errorf("ParseProjectKind(%q) = (%q, %v), want (%q, %v)", tc.answer, kind, ok, tc.kind, tc.ok)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleSystem, RoleUser, RoleAssistant} {
		if !r.Valid() {
			t.Errorf("expected %q to be valid", r)
		}
	}
	for _, r := range []Role{"", "model", "User", "tool"} {
		if r.Valid() {
			t.Errorf("expected %q to be invalid", r)
		}
	}
}

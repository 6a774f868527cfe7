package layout_test

import (
	"testing"

	"github.com/goliatone/go-formsynth/pkg/layout"
)

func TestRect_Overlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b layout.Rect
		want bool
	}{
		{
			name: "shared edge does not collide",
			a:    layout.Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    layout.Rect{X: 50, Y: 0, Width: 50, Height: 50},
			want: false,
		},
		{
			name: "one pixel overlap collides",
			a:    layout.Rect{X: 0, Y: 0, Width: 50, Height: 50},
			b:    layout.Rect{X: 49, Y: 0, Width: 51, Height: 50},
			want: true,
		},
		{
			name: "shared corner does not collide",
			a:    layout.Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    layout.Rect{X: 10, Y: 10, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "containment collides",
			a:    layout.Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    layout.Rect{X: 10, Y: 10, Width: 5, Height: 5},
			want: true,
		},
		{
			name: "vertically disjoint",
			a:    layout.Rect{X: 0, Y: 0, Width: 100, Height: 10},
			b:    layout.Rect{X: 0, Y: 11, Width: 100, Height: 10},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, tc.want)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("b.Overlaps(a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	cases := map[int]string{
		-1:  "",
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for index, want := range cases {
		if got := layout.Identifier(index); got != want {
			t.Fatalf("Identifier(%d) = %q, want %q", index, got, want)
		}
	}
}

func TestParseType_CaseInsensitive(t *testing.T) {
	got, err := layout.ParseType(" CheckBox ")
	if err != nil {
		t.Fatalf("parse type: %v", err)
	}
	if got != layout.TypeCheckbox {
		t.Fatalf("expected checkbox, got %q", got)
	}
	if _, err := layout.ParseType("select"); err == nil {
		t.Fatalf("expected unknown type error")
	}
}

func TestLayout_Overlapping(t *testing.T) {
	l := layout.Layout{Elements: []layout.Element{
		{Type: layout.TypeText, Coordinates: &layout.Coordinates{X: 0, Y: 0, Width: 50, Height: 50}},
		{Type: layout.TypeText, Coordinates: &layout.Coordinates{X: 50, Y: 0, Width: 50, Height: 50}},
		{Type: layout.TypeButton},
		{Type: layout.TypeText, Coordinates: &layout.Coordinates{X: 99, Y: 49, Width: 5, Height: 5}},
	}}

	i, j, ok := l.Overlapping()
	if !ok {
		t.Fatalf("expected overlap")
	}
	if i != 1 || j != 3 {
		t.Fatalf("expected pair (1,3), got (%d,%d)", i, j)
	}
}

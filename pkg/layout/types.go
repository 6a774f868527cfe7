package layout

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ElementType enumerates the supported UI controls.
type ElementType string

const (
	TypeButton   ElementType = "button"
	TypeCheckbox ElementType = "checkbox"
	TypeImage    ElementType = "image"
	TypeFile     ElementType = "file"
	TypePassword ElementType = "password"
	TypeRadio    ElementType = "radio"
	TypeText     ElementType = "text"
	TypeColor    ElementType = "color"
	TypeDate     ElementType = "date"
	TypeRange    ElementType = "range"
)

// Types returns every supported element type in canonical order.
func Types() []ElementType {
	return []ElementType{
		TypeButton, TypeCheckbox, TypeImage, TypeFile, TypePassword,
		TypeRadio, TypeText, TypeColor, TypeDate, TypeRange,
	}
}

// ParseType resolves a type name case-insensitively.
func ParseType(raw string) (ElementType, error) {
	candidate := ElementType(strings.ToLower(strings.TrimSpace(raw)))
	if !candidate.Valid() {
		return "", fmt.Errorf("layout: unknown element type %q", raw)
	}
	return candidate, nil
}

// Valid reports whether t is one of the supported types.
func (t ElementType) Valid() bool {
	switch t {
	case TypeButton, TypeCheckbox, TypeImage, TypeFile, TypePassword,
		TypeRadio, TypeText, TypeColor, TypeDate, TypeRange:
		return true
	default:
		return false
	}
}

// Labeled reports whether the control renders its content through a label
// element rather than a content attribute.
func (t ElementType) Labeled() bool {
	return t == TypeRadio || t == TypeCheckbox
}

// UnmarshalJSON normalises the type to lower case.
func (t *ElementType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Coordinates positions an element on the canvas, in pixels.
type Coordinates struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Element is one UI control placement.
type Element struct {
	Type        ElementType  `json:"type"`
	Value       string       `json:"value,omitempty"`
	Name        string       `json:"name,omitempty"`
	Content     string       `json:"content,omitempty"`
	Coordinates *Coordinates `json:"coordinates"`
}

// Rect returns the element's bounding rectangle. The second return value is
// false when the element has no coordinates.
func (e Element) Rect() (Rect, bool) {
	if e.Coordinates == nil {
		return Rect{}, false
	}
	c := e.Coordinates
	return Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}, true
}

// Rect is the half-open area [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Overlaps reports whether r and other share interior area. Rectangles that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// CollidesWith reports whether r overlaps any of the given rectangles.
func (r Rect) CollidesWith(others []Rect) bool {
	for _, other := range others {
		if r.Overlaps(other) {
			return true
		}
	}
	return false
}

// Layout is an ordered collection of elements describing one page.
type Layout struct {
	Elements []Element `json:"data"`

	// Source names where the layout came from (file path, fixture name).
	Source string `json:"-"`
}

// Len returns the number of elements.
func (l Layout) Len() int {
	return len(l.Elements)
}

// Overlapping returns the indices of the first pair of elements whose
// rectangles overlap. Elements without coordinates are ignored.
func (l Layout) Overlapping() (int, int, bool) {
	for i := range l.Elements {
		a, ok := l.Elements[i].Rect()
		if !ok {
			continue
		}
		for j := i + 1; j < len(l.Elements); j++ {
			b, ok := l.Elements[j].Rect()
			if !ok {
				continue
			}
			if a.Overlaps(b) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Identifier returns the control identifier for the element at index.
// Indices 0-25 map to "A"-"Z"; larger indices continue spreadsheet style
// ("AA", "AB", ... "ZZ", "AAA").
func Identifier(index int) string {
	if index < 0 {
		return ""
	}
	var buf []byte
	n := index
	for {
		buf = append(buf, byte('A'+n%26))
		if n < 26 {
			break
		}
		n = n/26 - 1
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

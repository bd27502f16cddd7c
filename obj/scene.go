package obj

import (
	"fmt"

	"github.com/easel2d/easel"
)

// SaveScene serializes the controller's scene to path: every line entity
// becomes an "l" record and every polygon a "f" record, with shared
// vertices deduplicated. Point entities have no representation in the
// format and make SaveScene fail before anything is written.
func SaveScene(c *easel.Controller, path string) error {
	w := NewWriter()
	for _, d := range c.Drawables() {
		switch d := d.(type) {
		case *easel.Line:
			w.AddLine([]easel.Vec2{d.Start, d.End})
		case *easel.Polygon:
			w.AddFace(d.Points)
		default:
			return fmt.Errorf("obj: cannot serialize %q", d.Name())
		}
	}
	if err := w.WriteFile(path); err != nil {
		return err
	}
	easel.Logger().Info("scene saved", "path", path, "lines", len(w.lines), "faces", len(w.faces))
	return nil
}

// LoadScene replaces the controller's scene with the file's contents: a
// line entity per "l" record (which must have exactly two vertices) and a
// polygon per non-empty "f" record, freshly named and tagged with the
// controller's current color. The display file is untouched if the file
// fails to parse or validate.
func LoadScene(c *easel.Controller, path string) error {
	r := NewReader()
	if err := r.ReadFile(path); err != nil {
		return err
	}
	for _, line := range r.Lines() {
		if len(line) != 2 {
			return fmt.Errorf("obj: line record with %d vertices cannot become a line entity", len(line))
		}
	}
	for _, face := range r.Faces() {
		if len(face) == 0 {
			return fmt.Errorf("obj: face record without vertices cannot become a polygon entity")
		}
	}

	c.Clear()
	for _, line := range r.Lines() {
		c.CreateLine(line[0], line[1])
	}
	for _, face := range r.Faces() {
		c.CreatePolygon(face)
	}
	easel.Logger().Info("scene loaded", "path", path, "lines", len(r.lines), "faces", len(r.faces))
	return nil
}

package easel

import "image"

// Viewer is the presentation collaborator. The controller pushes a full
// repaint after every mutation; the viewer renders the drawables in the
// given order (paint order = creation order). ViewportSize must stay fixed
// for the viewer's lifetime.
type Viewer interface {
	ViewportSize() image.Point
	Repaint(drawables []Drawable)
}

// Pivot selects the point a rotation is applied about: the world origin, the
// entity's own center, or an explicit world point. The zero value rotates
// about the origin.
type Pivot struct {
	kind  pivotKind
	point Vec2
}

type pivotKind int

const (
	pivotOrigin pivotKind = iota
	pivotCenter
	pivotPoint
)

// AboutOrigin rotates about the world origin.
func AboutOrigin() Pivot { return Pivot{kind: pivotOrigin} }

// AboutCenter rotates about the entity's own live center.
func AboutCenter() Pivot { return Pivot{kind: pivotCenter} }

// AboutPoint rotates about an explicit world point.
func AboutPoint(p Vec2) Pivot { return Pivot{kind: pivotPoint, point: p} }

// Controller owns the scene state: the display file, the viewing window and
// the color token applied to new entities. All mutation goes through its
// methods. It is not safe for concurrent use.
type Controller struct {
	file   *DisplayFile
	window *Window
	color  string
	viewer Viewer
}

// NewController creates a controller with an empty display file. The default
// window is the unit square at the origin and the default color is "white".
func NewController(opts ...Option) *Controller {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		file:   NewDisplayFile(),
		window: newWindow(o.windowPos, o.windowSize),
		color:  o.color,
	}
}

// AttachViewer connects the presentation collaborator and pushes the initial
// repaint. The viewport size is fixed from this point on. Operations that
// need the viewport (mapping, pan, zoom) panic until a viewer is attached.
func (c *Controller) AttachViewer(v Viewer) {
	c.viewer = v
	c.window.attach(v.ViewportSize())
	c.repaint()
}

// repaint notifies the viewer with the full ordered entity sequence. A
// no-op while no viewer is attached, so headless scene building works.
func (c *Controller) repaint() {
	if c.viewer == nil {
		return
	}
	c.viewer.Repaint(c.file.Drawables())
}

// mustViewer guards operations that need the pixel viewport.
func (c *Controller) mustViewer() {
	if c.viewer == nil {
		panic("easel: no viewer attached")
	}
}

// CreatePoint adds a point entity named "Point <n>", tagged with the current
// color, and returns it.
func (c *Controller) CreatePoint(coords Vec2) *Point {
	p := &Point{
		name:     c.file.unusedName("Point"),
		color:    c.color,
		Position: coords,
	}
	c.file.add(p)
	Logger().Debug("created point", "name", p.name)
	c.repaint()
	return p
}

// CreateLine adds a line entity named "Line <n>", tagged with the current
// color, and returns it.
func (c *Controller) CreateLine(start, end Vec2) *Line {
	l := &Line{
		name:  c.file.unusedName("Line"),
		color: c.color,
		Start: start,
		End:   end,
	}
	c.file.add(l)
	Logger().Debug("created line", "name", l.name)
	c.repaint()
	return l
}

// CreatePolygon adds a polygon entity named "Polygon <n>" from a non-empty
// vertex sequence, tagged with the current color, and returns it. The
// polygon is drawn as a closed loop. Passing no vertices is a caller bug
// and panics.
func (c *Controller) CreatePolygon(points []Vec2) *Polygon {
	if len(points) == 0 {
		panic("easel: polygon needs at least one vertex")
	}
	vertices := make([]Vec2, len(points))
	copy(vertices, points)
	pg := &Polygon{
		name:   c.file.unusedName("Polygon"),
		color:  c.color,
		Points: vertices,
	}
	c.file.add(pg)
	Logger().Debug("created polygon", "name", pg.name, "vertices", len(vertices))
	c.repaint()
	return pg
}

// SetColor sets the color token applied to entities created from now on.
// Existing entities keep their color.
func (c *Controller) SetColor(token string) {
	c.color = token
}

// ObjectNames returns the entity names in creation order.
func (c *Controller) ObjectNames() []string {
	return c.file.Names()
}

// Drawables returns the entities in creation order.
func (c *Controller) Drawables() []Drawable {
	return c.file.Drawables()
}

// Lookup resolves a name to its entity, or *UnknownObjectError.
func (c *Controller) Lookup(name string) (Drawable, error) {
	return c.file.Get(name)
}

// Clear removes every entity from the display file.
func (c *Controller) Clear() {
	c.file = NewDisplayFile()
	c.repaint()
}

// ScaleObject scales the named entity about its own center.
func (c *Controller) ScaleObject(name string, factors Vec2) error {
	d, err := c.file.Get(name)
	if err != nil {
		return err
	}
	c.ScaleDrawable(d, factors)
	return nil
}

// ScaleDrawable scales an already-resolved entity about its own center,
// never about the world origin: the scale is conjugated with translations
// to and from the live center.
func (c *Controller) ScaleDrawable(d Drawable, factors Vec2) {
	center := d.Center()
	m := Compose(
		Translate(center.Neg()),
		Scale(factors),
		Translate(center),
	)
	d.Transform(m)
	Logger().Debug("scaled", "name", d.Name())
	c.repaint()
}

// RotateObject rotates the named entity by degrees about the given pivot.
func (c *Controller) RotateObject(name string, pivot Pivot, degrees float64) error {
	d, err := c.file.Get(name)
	if err != nil {
		return err
	}
	c.RotateDrawable(d, pivot, degrees)
	return nil
}

// RotateDrawable rotates an already-resolved entity by degrees about the
// given pivot.
func (c *Controller) RotateDrawable(d Drawable, pivot Pivot, degrees float64) {
	m := Rotate(degrees)
	switch pivot.kind {
	case pivotOrigin:
		// rotation about the origin needs no conjugation
	case pivotCenter:
		center := d.Center()
		m = Compose(Translate(center.Neg()), m, Translate(center))
	case pivotPoint:
		m = Compose(Translate(pivot.point.Neg()), m, Translate(pivot.point))
	}
	d.Transform(m)
	Logger().Debug("rotated", "name", d.Name(), "degrees", degrees)
	c.repaint()
}

// TranslateObject shifts the named entity by a world-space delta.
func (c *Controller) TranslateObject(name string, delta Vec2) error {
	d, err := c.file.Get(name)
	if err != nil {
		return err
	}
	c.TranslateDrawable(d, delta)
	return nil
}

// TranslateDrawable shifts an already-resolved entity by a world-space
// delta. No pivot logic applies.
func (c *Controller) TranslateDrawable(d Drawable, delta Vec2) {
	d.Transform(Translate(delta))
	Logger().Debug("translated", "name", d.Name())
	c.repaint()
}

// PanWindow shifts the viewing window by a pixel-space displacement.
func (c *Controller) PanWindow(delta image.Point) {
	c.mustViewer()
	c.window.PanByPixelDelta(delta)
	c.repaint()
}

// ZoomWindow rescales the window by (1 + amount), keeping the world point
// under the anchor pixel stationary. See Window.Zoom for the sign
// convention.
func (c *Controller) ZoomWindow(anchor image.Point, amount float64) {
	c.mustViewer()
	c.window.Zoom(anchor, amount)
	c.repaint()
}

// RotateWindow always fails with ErrWindowRotation; no state changes.
func (c *Controller) RotateWindow(degrees float64) error {
	return c.window.Rotate(degrees)
}

// ResetWindow restores the initial window position and size.
func (c *Controller) ResetWindow() {
	c.window.Reset()
	c.repaint()
}

// WorldToPixel maps a world point to viewport pixel coordinates.
func (c *Controller) WorldToPixel(p Vec2) image.Point {
	c.mustViewer()
	return c.window.WorldToPixel(p)
}

// PixelToWorld maps a viewport pixel to world coordinates.
func (c *Controller) PixelToWorld(p image.Point) Vec2 {
	c.mustViewer()
	return c.window.PixelToWorld(p)
}

// Window returns the viewport window for read access.
func (c *Controller) Window() *Window {
	return c.window
}

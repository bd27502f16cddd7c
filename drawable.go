package easel

// DrawContext receives primitive draw calls in world coordinates. The
// presentation collaborator implements it and converts world points to
// pixels through the controller's viewport transform before rendering.
type DrawContext interface {
	DrawPoint(p Vec2, color string)
	DrawLine(start, end Vec2, color string)
}

// Drawable is a scene entity held by the display file. The set of
// implementations is fixed: Point, Line and Polygon.
type Drawable interface {
	// Name returns the unique display name assigned at creation.
	Name() string
	// Color returns the color token assigned at creation. The core never
	// interprets the token; that is the presentation collaborator's business.
	Color() string
	// Center returns the entity's center point.
	Center() Vec2
	// Transform rewrites the entity's coordinates in place.
	Transform(m Matrix)
	// Draw emits the entity's primitives to ctx, tagged with its color.
	Draw(ctx DrawContext)
}

// Point is a single world-space position.
type Point struct {
	name     string
	color    string
	Position Vec2
}

// Name returns the unique display name.
func (p *Point) Name() string { return p.name }

// Color returns the color token.
func (p *Point) Color() string { return p.color }

// Center returns the point's own position.
func (p *Point) Center() Vec2 { return p.Position }

// Transform rewrites the position in place.
func (p *Point) Transform(m Matrix) {
	p.Position = m.Apply(p.Position)
}

// Draw emits a single point-draw call.
func (p *Point) Draw(ctx DrawContext) {
	ctx.DrawPoint(p.Position, p.color)
}

// Line is a world-space segment between two endpoints.
type Line struct {
	name  string
	color string
	Start Vec2
	End   Vec2
}

// Name returns the unique display name.
func (l *Line) Name() string { return l.name }

// Color returns the color token.
func (l *Line) Color() string { return l.color }

// Center returns the midpoint of the endpoints.
func (l *Line) Center() Vec2 {
	return l.Start.Add(l.End).Div(2)
}

// Transform rewrites both endpoints in place.
func (l *Line) Transform(m Matrix) {
	l.Start = m.Apply(l.Start)
	l.End = m.Apply(l.End)
}

// Draw emits a single line-draw call.
func (l *Line) Draw(ctx DrawContext) {
	ctx.DrawLine(l.Start, l.End, l.color)
}

// Polygon is a closed loop of world-space vertices. Points is never empty.
type Polygon struct {
	name   string
	color  string
	Points []Vec2
}

// Name returns the unique display name.
func (pg *Polygon) Name() string { return pg.name }

// Color returns the color token.
func (pg *Polygon) Color() string { return pg.color }

// Center returns the unweighted mean of the vertices. This is deliberately
// not the area centroid: center-pivoted transforms are defined against it.
func (pg *Polygon) Center() Vec2 {
	var sum Vec2
	for _, p := range pg.Points {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(pg.Points)))
}

// Transform rewrites every vertex in place.
func (pg *Polygon) Transform(m Matrix) {
	for i, p := range pg.Points {
		pg.Points[i] = m.Apply(p)
	}
}

// Draw emits one line-draw call per consecutive vertex pair, plus the
// closing call from the last vertex back to the first.
func (pg *Polygon) Draw(ctx DrawContext) {
	for i := 0; i+1 < len(pg.Points); i++ {
		ctx.DrawLine(pg.Points[i], pg.Points[i+1], pg.color)
	}
	ctx.DrawLine(pg.Points[len(pg.Points)-1], pg.Points[0], pg.color)
}

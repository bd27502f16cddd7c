// Package canvas provides an off-screen software presentation collaborator
// for the easel core: it renders the scene into an RGBA image, drawing
// hairline strokes with the golang.org/x/image/vector rasterizer.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/easel2d/easel"
)

// Canvas renders drawables into a fixed-size RGBA image. It implements both
// easel.Viewer and easel.DrawContext: the controller pushes repaints, and
// entities call back with world-space primitives which the canvas converts
// to pixels through the controller's viewport transform.
type Canvas struct {
	ctrl       *easel.Controller
	size       image.Point
	img        *image.RGBA
	background color.Color
}

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithBackground sets the clear color used on every repaint.
// The default is white.
func WithBackground(c color.Color) Option {
	return func(cv *Canvas) { cv.background = c }
}

// New creates a canvas and attaches it to the controller, which fixes the
// viewport size and triggers the first repaint.
func New(ctrl *easel.Controller, width, height int, opts ...Option) *Canvas {
	cv := &Canvas{
		ctrl:       ctrl,
		size:       image.Point{X: width, Y: height},
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: color.White,
	}
	for _, opt := range opts {
		opt(cv)
	}
	ctrl.AttachViewer(cv)
	return cv
}

// ViewportSize returns the fixed pixel dimensions of the canvas.
func (cv *Canvas) ViewportSize() image.Point {
	return cv.size
}

// Repaint clears the image to the background and draws every entity in
// paint order.
func (cv *Canvas) Repaint(drawables []easel.Drawable) {
	draw.Draw(cv.img, cv.img.Bounds(), image.NewUniform(cv.background), image.Point{}, draw.Src)
	for _, d := range drawables {
		d.Draw(cv)
	}
}

// DrawPoint renders a world-space point as a 3x3 pixel marker.
func (cv *Canvas) DrawPoint(p easel.Vec2, token string) {
	px := cv.ctrl.WorldToPixel(p)
	cv.fillRect(px.X-1, px.Y-1, 3, 3, ParseColor(token))
}

// DrawLine renders a world-space segment as a hairline stroke.
func (cv *Canvas) DrawLine(start, end easel.Vec2, token string) {
	a := cv.ctrl.WorldToPixel(start)
	b := cv.ctrl.WorldToPixel(end)
	cv.strokeSegment(a, b, ParseColor(token))
}

// strokeSegment rasterizes a unit-width quad along the segment, offset to
// pixel centers so axis-aligned hairlines cover whole pixels.
func (cv *Canvas) strokeSegment(a, b image.Point, col color.Color) {
	ax, ay := float32(a.X)+0.5, float32(a.Y)+0.5
	bx, by := float32(b.X)+0.5, float32(b.Y)+0.5
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		// degenerate segment: a single pixel
		cv.fillRect(a.X, a.Y, 1, 1, col)
		return
	}
	// half-width perpendicular offset
	px, py := -dy/length*0.5, dx/length*0.5

	r := vector.NewRasterizer(cv.size.X, cv.size.Y)
	r.DrawOp = draw.Over
	r.MoveTo(ax+px, ay+py)
	r.LineTo(bx+px, by+py)
	r.LineTo(bx-px, by-py)
	r.LineTo(ax-px, ay-py)
	r.ClosePath()
	r.Draw(cv.img, cv.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (cv *Canvas) fillRect(x, y, w, h int, col color.Color) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(cv.img.Bounds())
	draw.Draw(cv.img, rect, image.NewUniform(col), image.Point{}, draw.Over)
}

// Image returns the backing image. It is overwritten on every repaint.
func (cv *Canvas) Image() *image.RGBA {
	return cv.img
}

// SavePNG writes the current image to path.
func (cv *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, cv.img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

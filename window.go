package easel

import "image"

// Window is the world-space viewing rectangle mapped onto the pixel
// viewport. pos anchors the viewport's reference corner in world
// coordinates and size is the window extent in world units. The initial
// pos/size pair is retained so Reset can restore it. The viewport dimensions
// are fixed once, when the presentation collaborator attaches.
type Window struct {
	pos, size         Vec2
	origPos, origSize Vec2
	viewport          image.Point
}

func newWindow(pos, size Vec2) *Window {
	return &Window{pos: pos, size: size, origPos: pos, origSize: size}
}

// attach fixes the pixel viewport size. Called once, on viewer attachment.
func (w *Window) attach(viewport image.Point) {
	w.viewport = viewport
}

// Pos returns the current window position in world units.
func (w *Window) Pos() Vec2 { return w.pos }

// Size returns the current window extent in world units.
func (w *Window) Size() Vec2 { return w.size }

// WorldToPixel maps a world point to viewport pixel coordinates, truncating
// to integers. World y grows upward and pixel y downward; the 1-p.Y term
// anchors world y=0 near the bottom of a unit-sized window.
func (w *Window) WorldToPixel(p Vec2) image.Point {
	return image.Point{
		X: int((p.X - w.pos.X) / w.size.X * float64(w.viewport.X)),
		Y: int((1 - p.Y - w.pos.Y) / w.size.Y * float64(w.viewport.Y)),
	}
}

// PixelToWorld is the algebraic inverse of WorldToPixel. Round-tripping a
// world point recovers it up to one pixel's extent in world units.
func (w *Window) PixelToWorld(p image.Point) Vec2 {
	return Vec2{
		X: float64(p.X)/float64(w.viewport.X)*w.size.X + w.pos.X,
		Y: -(float64(p.Y)/float64(w.viewport.Y)*w.size.Y + w.pos.Y - 1),
	}
}

// pixelDeltaToWorld converts a pixel displacement to world units. The y sign
// flips to match the inverted pixel y-axis.
func (w *Window) pixelDeltaToWorld(d image.Point) Vec2 {
	return Vec2{
		X: float64(d.X) / float64(w.viewport.X) * w.size.X,
		Y: -float64(d.Y) / float64(w.viewport.Y) * w.size.Y,
	}
}

// PanByPixelDelta shifts the window by a viewport-space displacement.
func (w *Window) PanByPixelDelta(d image.Point) {
	w.pos = w.pos.Add(w.pixelDeltaToWorld(d))
}

// Zoom rescales the window by (1 + amount), shifting its position so that
// the world point under the anchor pixel stays visually stationary.
// Positive amount grows the window (zoom out); negative shrinks it (zoom
// in). The sign convention follows the calling collaborator's scroll
// handling and is used consistently across the package.
func (w *Window) Zoom(anchor image.Point, amount float64) {
	before := w.PixelToWorld(anchor)
	w.size = w.size.Mul(1 + amount)
	after := w.PixelToWorld(anchor)
	correction := after.Sub(before)
	w.pos = w.pos.Sub(Vec2{X: correction.X, Y: -correction.Y})
}

// Reset restores the window captured at construction.
func (w *Window) Reset() {
	w.pos, w.size = w.origPos, w.origSize
}

// Rotate always fails with ErrWindowRotation and changes no state. The
// window stays axis-aligned in this core; this is a known gap, kept visible
// rather than silently dropped.
func (w *Window) Rotate(degrees float64) error {
	return ErrWindowRotation
}

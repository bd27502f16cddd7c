package easel

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubViewer records repaint notifications.
type stubViewer struct {
	size     image.Point
	repaints [][]Drawable
}

func (v *stubViewer) ViewportSize() image.Point { return v.size }

func (v *stubViewer) Repaint(drawables []Drawable) {
	v.repaints = append(v.repaints, drawables)
}

func newTestController(t *testing.T) (*Controller, *stubViewer) {
	t.Helper()
	ctrl := NewController()
	viewer := &stubViewer{size: image.Point{X: 500, Y: 500}}
	ctrl.AttachViewer(viewer)
	return ctrl, viewer
}

func TestCreateNaming(t *testing.T) {
	ctrl, _ := newTestController(t)

	p1 := ctrl.CreatePoint(V2(0, 0))
	p2 := ctrl.CreatePoint(V2(1, 1))
	l := ctrl.CreateLine(V2(0, 0), V2(1, 1))
	pg := ctrl.CreatePolygon(hexagonPoints())

	assert.Equal(t, "Point 1", p1.Name())
	assert.Equal(t, "Point 2", p2.Name())
	assert.Equal(t, "Line 1", l.Name())
	assert.Equal(t, "Polygon 1", pg.Name())
	assert.Equal(t, []string{"Point 1", "Point 2", "Line 1", "Polygon 1"}, ctrl.ObjectNames())
}

func TestNameUniqueness(t *testing.T) {
	ctrl, _ := newTestController(t)
	for i := 0; i < 10; i++ {
		ctrl.CreatePoint(V2(float64(i), 0))
		ctrl.CreateLine(V2(0, 0), V2(1, 1))
		ctrl.CreatePolygon(hexagonPoints())
	}

	seen := make(map[string]bool)
	for _, name := range ctrl.ObjectNames() {
		assert.False(t, seen[name], "name %q assigned twice", name)
		seen[name] = true
	}
	assert.Len(t, seen, 30)
}

func TestSetColorAffectsNewEntitiesOnly(t *testing.T) {
	ctrl, _ := newTestController(t)

	before := ctrl.CreatePoint(V2(0, 0))
	ctrl.SetColor("#00ff00")
	after := ctrl.CreatePoint(V2(1, 1))

	assert.Equal(t, "white", before.Color())
	assert.Equal(t, "#00ff00", after.Color())
}

func TestScalePreservesCenter(t *testing.T) {
	ctrl, _ := newTestController(t)
	polygon := ctrl.CreatePolygon(hexagonPoints())

	before := polygon.Center()
	ctrl.ScaleDrawable(polygon, V2(2, 2))
	assert.True(t, polygon.Center().Approx(before, 1e-12),
		"center moved from %+v to %+v", before, polygon.Center())
}

func TestRotateAboutCenterPreservesCenter(t *testing.T) {
	angles := []float64{30, 90, 180, -45, 7.5, 360}
	for _, degrees := range angles {
		ctrl, _ := newTestController(t)
		polygon := ctrl.CreatePolygon(hexagonPoints())

		before := polygon.Center()
		ctrl.RotateDrawable(polygon, AboutCenter(), degrees)
		assert.True(t, polygon.Center().Approx(before, 1e-12),
			"rotate %g: center moved from %+v to %+v", degrees, before, polygon.Center())
	}
}

func TestRotateAboutOrigin(t *testing.T) {
	ctrl, _ := newTestController(t)
	point := ctrl.CreatePoint(V2(1, 0))

	ctrl.RotateDrawable(point, AboutOrigin(), 90)
	assert.True(t, point.Position.Approx(V2(0, 1), 1e-12), "got %+v", point.Position)
}

func TestRotateAboutExplicitPoint(t *testing.T) {
	ctrl, _ := newTestController(t)
	line := ctrl.CreateLine(V2(1, 1), V2(2, 1))

	ctrl.RotateDrawable(line, AboutPoint(V2(1, 1)), 90)
	assert.True(t, line.Start.Approx(V2(1, 1), 1e-12), "pivot endpoint moved: %+v", line.Start)
	assert.True(t, line.End.Approx(V2(1, 2), 1e-12), "got %+v", line.End)
}

func TestTranslateExactness(t *testing.T) {
	ctrl, _ := newTestController(t)
	initial := hexagonPoints()
	polygon := ctrl.CreatePolygon(initial)

	delta := V2(0.5, 0.5)
	ctrl.TranslateDrawable(polygon, delta)
	for i, got := range polygon.Points {
		want := initial[i].Add(delta)
		assert.True(t, got.Approx(want, 1e-12), "vertex %d = %+v, want %+v", i, got, want)
	}
}

func TestScaleThenRotateScenario(t *testing.T) {
	ctrl, _ := newTestController(t)
	polygon := ctrl.CreatePolygon(hexagonPoints())
	original := polygon.Center()

	ctrl.ScaleDrawable(polygon, V2(2, 2))
	assert.True(t, polygon.Center().Approx(original, 1e-9),
		"after scale: center = %+v, want %+v", polygon.Center(), original)

	ctrl.RotateDrawable(polygon, AboutCenter(), 30)
	assert.True(t, polygon.Center().Approx(original, 1e-9),
		"after rotate: center = %+v, want %+v", polygon.Center(), original)
}

func TestNameBasedOperations(t *testing.T) {
	ctrl, _ := newTestController(t)
	line := ctrl.CreateLine(V2(0, 0), V2(1, 1))

	require.NoError(t, ctrl.TranslateObject("Line 1", V2(1, 0)))
	assert.Equal(t, V2(1, 0), line.Start)

	require.NoError(t, ctrl.ScaleObject("Line 1", V2(2, 2)))
	require.NoError(t, ctrl.RotateObject("Line 1", AboutCenter(), 45))
}

func TestUnknownObjectErrors(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.CreateLine(V2(0, 0), V2(1, 1))

	for _, err := range []error{
		ctrl.ScaleObject("Line 99", V2(2, 2)),
		ctrl.RotateObject("Line 99", AboutCenter(), 30),
		ctrl.TranslateObject("Line 99", V2(1, 1)),
	} {
		var uerr *UnknownObjectError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "Line 99", uerr.Name)
	}
}

func TestLookup(t *testing.T) {
	ctrl, _ := newTestController(t)
	created := ctrl.CreatePoint(V2(0.5, 0.5))

	got, err := ctrl.Lookup("Point 1")
	require.NoError(t, err)
	assert.Same(t, created, got)

	_, err = ctrl.Lookup("Point 2")
	var uerr *UnknownObjectError
	assert.ErrorAs(t, err, &uerr)
}

func TestZoomScenario(t *testing.T) {
	ctrl, _ := newTestController(t)

	center := ctrl.WorldToPixel(V2(0.5, 0.5))
	require.Equal(t, image.Point{X: 250, Y: 250}, center)

	ctrl.ZoomWindow(center, 1) // window doubles
	got := ctrl.PixelToWorld(center)
	assert.True(t, got.Approx(V2(0.5, 0.5), 1e-9), "anchor drifted to %+v", got)
}

func TestViewportRoundTrip(t *testing.T) {
	ctrl, _ := newTestController(t)
	tolerance := 1.0/500 + 1e-9

	for _, p := range hexagonPoints() {
		got := ctrl.PixelToWorld(ctrl.WorldToPixel(p))
		assert.True(t, got.Approx(p, tolerance), "round trip of %+v = %+v", p, got)
	}
}

func TestResetWindowRestoresMapping(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctrl.PanWindow(image.Point{X: 42, Y: -17})
	ctrl.ZoomWindow(image.Point{X: 100, Y: 100}, 0.5)

	ctrl.ResetWindow()
	assert.Equal(t, image.Point{X: 250, Y: 250}, ctrl.WorldToPixel(V2(0.5, 0.5)))
}

func TestRotateWindowNotSupported(t *testing.T) {
	ctrl, _ := newTestController(t)
	before := ctrl.WorldToPixel(V2(0.5, 0.5))

	err := ctrl.RotateWindow(30)
	require.ErrorIs(t, err, ErrWindowRotation)
	assert.Equal(t, before, ctrl.WorldToPixel(V2(0.5, 0.5)), "RotateWindow mutated the window")
}

func TestRepaintNotifications(t *testing.T) {
	ctrl := NewController()
	viewer := &stubViewer{size: image.Point{X: 500, Y: 500}}

	ctrl.AttachViewer(viewer)
	require.Len(t, viewer.repaints, 1, "attach pushes the initial repaint")
	assert.Empty(t, viewer.repaints[0])

	ctrl.CreatePoint(V2(0, 0))
	line := ctrl.CreateLine(V2(0, 0), V2(1, 1))
	require.Len(t, viewer.repaints, 3)

	// every notification carries the full ordered sequence
	last := viewer.repaints[len(viewer.repaints)-1]
	require.Len(t, last, 2)
	assert.Equal(t, "Point 1", last[0].Name())
	assert.Equal(t, "Line 1", last[1].Name())

	ctrl.TranslateDrawable(line, V2(1, 0))
	ctrl.PanWindow(image.Point{X: 5, Y: 0})
	ctrl.ZoomWindow(image.Point{X: 250, Y: 250}, 0.1)
	ctrl.ResetWindow()
	assert.Len(t, viewer.repaints, 7)
}

func TestClear(t *testing.T) {
	ctrl, viewer := newTestController(t)
	ctrl.CreatePoint(V2(0, 0))
	ctrl.CreateLine(V2(0, 0), V2(1, 1))

	ctrl.Clear()
	assert.Empty(t, ctrl.Drawables())
	assert.Empty(t, viewer.repaints[len(viewer.repaints)-1])

	// names restart after a clear
	p := ctrl.CreatePoint(V2(0, 0))
	assert.Equal(t, "Point 1", p.Name())
}

func TestViewportOperationsPanicWithoutViewer(t *testing.T) {
	ctrl := NewController()

	assert.Panics(t, func() { ctrl.WorldToPixel(V2(0.5, 0.5)) })
	assert.Panics(t, func() { ctrl.PixelToWorld(image.Point{X: 10, Y: 10}) })
	assert.Panics(t, func() { ctrl.PanWindow(image.Point{X: 1, Y: 0}) })
	assert.Panics(t, func() { ctrl.ZoomWindow(image.Point{X: 0, Y: 0}, 0.1) })
}

func TestHeadlessSceneBuilding(t *testing.T) {
	ctrl := NewController()

	// creation and transforms work without a viewer; repaint is a no-op
	polygon := ctrl.CreatePolygon(hexagonPoints())
	ctrl.ScaleDrawable(polygon, V2(2, 2))
	assert.Len(t, ctrl.Drawables(), 1)
}

func TestCreatePolygonEmptyPanics(t *testing.T) {
	ctrl, _ := newTestController(t)
	assert.Panics(t, func() { ctrl.CreatePolygon(nil) })
}

func TestCreatePolygonCopiesInput(t *testing.T) {
	ctrl, _ := newTestController(t)
	input := hexagonPoints()
	polygon := ctrl.CreatePolygon(input)

	input[0] = V2(99, 99)
	assert.Equal(t, V2(0.2, 0.2), polygon.Points[0], "polygon aliases caller slice")
}

func TestWithWindowOption(t *testing.T) {
	ctrl := NewController(WithWindow(V2(-5, -5), V2(10, 10)))
	viewer := &stubViewer{size: image.Point{X: 500, Y: 500}}
	ctrl.AttachViewer(viewer)

	// x: (0 - -5) / 10 * 500 = 250
	got := ctrl.WorldToPixel(V2(0, 0))
	assert.Equal(t, 250, got.X)
}

func TestWithColorOption(t *testing.T) {
	ctrl := NewController(WithColor("magenta"))
	p := ctrl.CreatePoint(V2(0, 0))
	assert.Equal(t, "magenta", p.Color())
}

// Package easel implements the geometric core of an interactive 2D vector
// editor: affine transformations over homogeneous coordinates, a display
// file of named drawable entities (points, lines, polygons), and a
// bidirectional mapping between a world-space viewing window and a
// fixed-size pixel viewport.
//
// # Quick Start
//
//	ctrl := easel.NewController()
//	cv := canvas.New(ctrl, 500, 500) // attaches the viewer, fixes the viewport
//
//	ctrl.SetColor("#d04040")
//	poly := ctrl.CreatePolygon([]easel.Vec2{
//		easel.V2(0.2, 0.2), easel.V2(0.8, 0.2), easel.V2(0.5, 0.8),
//	})
//
//	ctrl.ScaleDrawable(poly, easel.V2(2, 2))           // about its own center
//	ctrl.RotateDrawable(poly, easel.AboutCenter(), 30) // degrees, CCW
//	ctrl.ZoomWindow(image.Point{X: 250, Y: 250}, -0.1) // anchored zoom in
//
// # Coordinate System
//
// World space is the unbounded real plane with y increasing upward. The
// viewing window is an axis-aligned rectangle of world space mapped onto the
// whole viewport, whose integer pixel coordinates have y increasing
// downward. Rotation angles are in degrees, counter-clockwise.
//
// # Architecture
//
// The Controller aggregate owns all mutable state: the display file (an
// ordered, name-addressable entity collection), the viewing window, and the
// color token applied to newly created entities. A presentation collaborator
// implements the Viewer interface and is attached once; after every mutation
// the controller pushes a full repaint with the entities in creation order
// (paint order). The obj subpackage persists line and face geometry to an
// indexed plain-text format, and the canvas subpackage is an off-screen
// software viewer.
//
// The core is single-threaded by design: every operation runs to completion
// synchronously and no Controller method is safe for concurrent use.
package easel

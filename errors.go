package easel

import (
	"errors"
	"fmt"
)

// ErrWindowRotation reports that rotating the viewing window is not
// supported: the window stays axis-aligned.
var ErrWindowRotation = errors.New("easel: window rotation is not supported")

// UnknownObjectError reports a display-file lookup for a name that is not
// present.
type UnknownObjectError struct {
	Name string
}

func (e *UnknownObjectError) Error() string {
	return fmt.Sprintf("easel: unknown object %q", e.Name)
}

// HomogeneousCoordinateError reports a transformed point whose homogeneous
// coordinate came out different from 1. It indicates a malformed
// transformation matrix and is delivered by panic.
type HomogeneousCoordinateError struct {
	W float64
}

func (e *HomogeneousCoordinateError) Error() string {
	return fmt.Sprintf("easel: homogeneous coordinate is %g, want 1", e.W)
}

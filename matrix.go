package easel

import "math"

// Matrix is a 3x3 affine transformation matrix over homogeneous 2D
// coordinates, in row-major order. Matrices built from Translate, Scale and
// Rotate, and any product of them, carry (0, 0, 1) as the bottom row.
type Matrix [3][3]float64

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translate creates a translation by delta.
func Translate(delta Vec2) Matrix {
	return Matrix{
		{1, 0, delta.X},
		{0, 1, delta.Y},
		{0, 0, 1},
	}
}

// Scale creates a scaling matrix about the origin.
func Scale(factors Vec2) Matrix {
	return Matrix{
		{factors.X, 0, 0},
		{0, factors.Y, 0},
		{0, 0, 1},
	}
}

// Rotate creates a counter-clockwise rotation about the origin.
// The angle is in degrees; world space is y-up.
func Rotate(degrees float64) Matrix {
	rad := degrees * math.Pi / 180
	c := math.Cos(rad)
	s := math.Sin(rad)
	return Matrix{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Multiply returns the matrix product m * other.
func (m Matrix) Multiply(other Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Compose returns the single matrix equivalent to applying ms in list order:
//
//	Compose(A, B, C).Apply(p) == C.Apply(B.Apply(A.Apply(p)))
//
// With column-vector points that is the right-to-left product C*B*A.
func Compose(ms ...Matrix) Matrix {
	out := Identity()
	for _, m := range ms {
		out = m.Multiply(out)
	}
	return out
}

// Apply transforms the point p, treated as the homogeneous column (x, y, 1).
// It panics with *HomogeneousCoordinateError if the transformed homogeneous
// coordinate is not exactly 1. Matrices built by this package keep the
// bottom row at (0, 0, 1), so the panic indicates a malformed matrix.
func (m Matrix) Apply(p Vec2) Vec2 {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]
	w := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]
	if w != 1 {
		panic(&HomogeneousCoordinateError{W: w})
	}
	return Vec2{X: x, Y: y}
}

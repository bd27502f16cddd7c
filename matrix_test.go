package easel

import (
	"errors"
	"math"
	"testing"
)

const matrixEpsilon = 1e-12

func matricesApprox(a, b Matrix) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a[i][j]-b[i][j]) > matrixEpsilon {
				return false
			}
		}
	}
	return true
}

func TestComposeScaleThenTranslate(t *testing.T) {
	got := Compose(
		Scale(V2(2, 2)),
		Translate(V2(10, 0)),
	)
	want := Matrix{
		{2, 0, 10},
		{0, 2, 0},
		{0, 0, 1},
	}
	if !matricesApprox(got, want) {
		t.Errorf("Compose(Scale, Translate) = %v, want %v", got, want)
	}
}

func TestComposeEmptyIsIdentity(t *testing.T) {
	if got := Compose(); got != Identity() {
		t.Errorf("Compose() = %v, want identity", got)
	}
}

func TestComposeMatchesSequentialApplication(t *testing.T) {
	a := Translate(V2(1, 0))
	b := Rotate(90)
	c := Scale(V2(2, 1))

	points := []Vec2{V2(0, 0), V2(1, 1), V2(-0.5, 2.25), V2(3.1415, -2.71828)}
	for _, p := range points {
		sequential := c.Apply(b.Apply(a.Apply(p)))
		composed := Compose(a, b, c).Apply(p)
		if !composed.Approx(sequential, matrixEpsilon) {
			t.Errorf("Compose(a, b, c).Apply(%+v) = %+v, want %+v", p, composed, sequential)
		}
	}
}

func TestRotateApply(t *testing.T) {
	got := Rotate(30).Apply(V2(0.2, 0.2))
	want := V2(0.07320508075688772, 0.27320508075688776)
	if !got.Approx(want, matrixEpsilon) {
		t.Errorf("Rotate(30).Apply(0.2, 0.2) = %+v, want %+v", got, want)
	}
}

func TestApplyConstructors(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Vec2
		want Vec2
	}{
		{"identity", Identity(), V2(1.5, -2.5), V2(1.5, -2.5)},
		{"translate", Translate(V2(10, -3)), V2(1, 2), V2(11, -1)},
		{"scale", Scale(V2(2, 0.5)), V2(3, 4), V2(6, 2)},
		{"rotate 90", Rotate(90), V2(1, 0), V2(0, 1)},
		{"rotate 180", Rotate(180), V2(1, 2), V2(-1, -2)},
		{"rotate -90", Rotate(-90), V2(0, 1), V2(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Apply(tt.p)
			if !got.Approx(tt.want, matrixEpsilon) {
				t.Errorf("Apply(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestApplyPanicsOnBadHomogeneousRow(t *testing.T) {
	m := Identity()
	m[2][2] = 2 // bottom row no longer (0, 0, 1)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Apply did not panic on w != 1")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		var herr *HomogeneousCoordinateError
		if !errors.As(err, &herr) {
			t.Fatalf("panic error = %v, want *HomogeneousCoordinateError", err)
		}
		if herr.W != 2 {
			t.Errorf("HomogeneousCoordinateError.W = %g, want 2", herr.W)
		}
	}()
	m.Apply(V2(1, 1))
}

func TestCompositesKeepHomogeneousRow(t *testing.T) {
	m := Compose(
		Translate(V2(-3, 7)),
		Rotate(33),
		Scale(V2(2, 5)),
		Translate(V2(1, -1)),
	)
	if m[2][0] != 0 || m[2][1] != 0 || m[2][2] != 1 {
		t.Errorf("composite bottom row = %v, want (0, 0, 1)", m[2])
	}
}

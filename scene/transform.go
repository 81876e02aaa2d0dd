package scene

import (
	"math"

	"github.com/bella-project/bella/core"
)

// Transform is a 2D affine transform in column-major coefficient order
// [a b c d e f], mapping (x, y) to (a*x + c*y + e, b*x + d*y + f).
// It doubles as the ECS component describing an entity's placement.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate returns a pure translation transform
func Translate(v core.Vec2) Transform {
	return Transform{A: 1, D: 1, E: v.X, F: v.Y}
}

// TranslateXY returns a pure translation transform from coordinates
func TranslateXY(x, y float64) Transform {
	return Translate(core.Vec2{X: x, Y: y})
}

// Rotate returns a rotation transform by angle radians around the origin
func Rotate(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// Scale returns a scaling transform
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Mul returns the composition t∘o: applying the result first applies o,
// then t
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		A: t.A*o.A + t.C*o.B,
		B: t.B*o.A + t.D*o.B,
		C: t.A*o.C + t.C*o.D,
		D: t.B*o.C + t.D*o.D,
		E: t.A*o.E + t.C*o.F + t.E,
		F: t.B*o.E + t.D*o.F + t.F,
	}
}

// Then returns o∘t: applying the result first applies t, then o
func (t Transform) Then(o Transform) Transform {
	return o.Mul(t)
}

// Apply maps a point through the transform
func (t Transform) Apply(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// Invert returns the inverse transform and false if t is singular
func (t Transform) Invert() (Transform, bool) {
	det := t.A*t.D - t.B*t.C
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	inv := 1 / det
	return Transform{
		A: t.D * inv,
		B: -t.B * inv,
		C: -t.C * inv,
		D: t.A * inv,
		E: (t.C*t.F - t.D*t.E) * inv,
		F: (t.B*t.E - t.A*t.F) * inv,
	}, true
}

// IsIdentity reports whether t is exactly the identity transform
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

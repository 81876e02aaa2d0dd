package scene

import (
	"math"
	"testing"

	"github.com/bella-project/bella/core"
)

func approxVec(t *testing.T, got, want core.Vec2, context string) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("%s = %+v, want %+v", context, got, want)
	}
}

func TestTranslateApply(t *testing.T) {
	tf := TranslateXY(3, 4)
	approxVec(t, tf.Apply(core.Vec2{X: 1, Y: 1}), core.Vec2{X: 4, Y: 5}, "translate")
}

func TestRotateQuarterTurn(t *testing.T) {
	tf := Rotate(math.Pi / 2)
	approxVec(t, tf.Apply(core.Vec2{X: 1, Y: 0}), core.Vec2{X: 0, Y: 1}, "rotate 90°")
}

func TestComposeOrder(t *testing.T) {
	// Then applies the receiver first
	tf := Scale(2, 2).Then(TranslateXY(10, 0))
	approxVec(t, tf.Apply(core.Vec2{X: 1, Y: 1}), core.Vec2{X: 12, Y: 2}, "scale then translate")

	// Mul applies the argument first
	tf = TranslateXY(10, 0).Mul(Scale(2, 2))
	approxVec(t, tf.Apply(core.Vec2{X: 1, Y: 1}), core.Vec2{X: 12, Y: 2}, "mul order")
}

func TestInvertRoundTrip(t *testing.T) {
	tf := TranslateXY(5, -3).Mul(Rotate(0.7)).Mul(Scale(2, 0.5))
	inv, ok := tf.Invert()
	if !ok {
		t.Fatal("invertible transform reported singular")
	}

	p := core.Vec2{X: 1.5, Y: -2.25}
	approxVec(t, inv.Apply(tf.Apply(p)), p, "invert round trip")
}

func TestInvertSingular(t *testing.T) {
	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("singular transform reported invertible")
	}
}

func TestIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if TranslateXY(1, 0).IsIdentity() {
		t.Error("translation reported as identity")
	}
}

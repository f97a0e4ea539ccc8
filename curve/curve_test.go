package curve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kimchi-zk/circuit/curve"
	"github.com/kimchi-zk/circuit/field/frfield"
)

func TestDefaultParamsGeneratorOnCurve(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	p := curve.DefaultParams(ops)

	x, y := p.Base[0], p.Base[1]
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(p.B)
	assert.True(lhs.Equal(rhs), "generator must satisfy y^2 = x^3 + b")
}

func TestFindCubeRootIsPrimitive(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	phi, ok := curve.FindCubeRoot(ops)
	assert.True(ok)
	assert.False(phi.IsOne())
	assert.True(phi.Mul(phi).Mul(phi).IsOne())
}

func TestDoubleMatchesAddSelf(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	p := curve.DefaultParams(ops)
	base := curve.Point[frfield.Fr]{X: p.Base[0], Y: p.Base[1]}

	viaDouble := curve.Double(ops, base)
	viaAdd := curve.Add(ops, base, base)
	assert.True(viaDouble.X.Equal(viaAdd.X))
	assert.True(viaDouble.Y.Equal(viaAdd.Y))
}

func TestScalarMulNaiveMatchesRepeatedAdd(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	p := curve.DefaultParams(ops)
	base := curve.Point[frfield.Fr]{X: p.Base[0], Y: p.Base[1]}

	got := curve.ScalarMulNaive(ops, base, big.NewInt(5))

	want := base
	for i := 0; i < 4; i++ {
		want = curve.Add(ops, want, base)
	}
	assert.True(got.X.Equal(want.X))
	assert.True(got.Y.Equal(want.Y))
}

func TestScalarMulNaiveOne(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	p := curve.DefaultParams(ops)
	base := curve.Point[frfield.Fr]{X: p.Base[0], Y: p.Base[1]}

	got := curve.ScalarMulNaive(ops, base, big.NewInt(1))
	assert.True(got.X.Equal(base.X))
	assert.True(got.Y.Equal(base.Y))
}

package qfloat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/astrokit/ndarray"
	"github.com/katalvlaran/astrokit/qfloat"
	"github.com/katalvlaran/astrokit/units"
)

const tol = 1e-9

// requireItem asserts nominal and uncertainty of a one-element value.
func requireItem(t *testing.T, q *qfloat.QFloat, nominal, std float64) {
	t.Helper()
	v, s, err := q.Item()
	require.NoError(t, err)
	require.InDelta(t, nominal, v, tol, "nominal")
	require.InDelta(t, std, s, tol, "uncertainty")
}

func TestQFloat_New(t *testing.T) {
	t.Parallel()

	q, err := qfloat.New([]float64{1, 2, 3}, 0.5, "m")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, q.Shape())
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, q.Uncertainty().Data())
	assert.True(t, q.Unit().Equal(units.Meter))

	z, err := qfloat.New(2.0, nil, "")
	require.NoError(t, err)
	requireItem(t, z, 2, 0)
	assert.True(t, z.Unit().IsDimensionless())
	assert.Equal(t, 0, z.Ndim())

	s, err := qfloat.Scalar(3, 0.1, "km")
	require.NoError(t, err)
	requireItem(t, s, 3, 0.1)
	assert.Equal(t, "3+-0.1 km", s.String())

	_, err = qfloat.New([]float64{1, 2, 3}, []float64{0.1, 0.2}, "")
	require.ErrorIs(t, err, qfloat.ErrShapeMismatch)

	_, err = qfloat.New(1.0, -0.1, "")
	require.ErrorIs(t, err, qfloat.ErrNegativeUncertainty)

	_, err = qfloat.New(1.0, 0.1, "parsnip")
	require.ErrorIs(t, err, qfloat.ErrUnitIncompatible)
	require.ErrorIs(t, err, units.ErrUnknownUnit)

	_, err = qfloat.New("one", nil, "")
	require.ErrorIs(t, err, qfloat.ErrUnsupportedOperand)

	_, err = qfloat.FromArrays(nil, nil, units.Meter)
	require.ErrorIs(t, err, qfloat.ErrUnsupportedOperand)
}

func TestQFloat_Arithmetic(t *testing.T) {
	t.Parallel()

	a := qfloat.MustNew(1.0, 0.1, "")
	b := qfloat.MustNew(2.0, 0.2, "")
	x := qfloat.MustNew(2.0, 0.1, "")
	y := qfloat.MustNew(3.0, 0.2, "")

	cases := []struct {
		name     string
		run      func() (*qfloat.QFloat, error)
		nom, std float64
	}{
		{"add", func() (*qfloat.QFloat, error) { return a.Add(b) }, 3, math.Sqrt(0.05)},
		{"sub", func() (*qfloat.QFloat, error) { return b.Sub(a) }, 1, math.Sqrt(0.05)},
		{"mul", func() (*qfloat.QFloat, error) { return x.Mul(y) }, 6, 0.5},
		{"div", func() (*qfloat.QFloat, error) { return y.Div(x) }, 1.5, math.Hypot(0.2/2, 3*0.1/4)},
		{"floordiv", func() (*qfloat.QFloat, error) { return y.FloorDiv(x) }, 1, 0},
		{"mod", func() (*qfloat.QFloat, error) { return qfloat.MustNew(5.5, 0.1, "").Mod(2.0) }, 1.5, 0.1},
		{"pow", func() (*qfloat.QFloat, error) { return x.Pow(2.0) }, 4, 0.4},
		{"plain operand", func() (*qfloat.QFloat, error) { return a.Add(1.0) }, 2, 0.1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := tc.run()
			require.NoError(t, err)
			requireItem(t, out, tc.nom, tc.std)
		})
	}

	requireItem(t, a.Neg(), -1, 0.1)
	requireItem(t, a.Neg().Abs(), 1, 0.1)
	requireItem(t, a.Pos(), 1, 0.1)
}

func TestQFloat_ArithmeticUnits(t *testing.T) {
	t.Parallel()

	m := qfloat.MustNew(1.0, 0.0, "m")
	km := qfloat.MustNew(1.0, 0.1, "km")
	s := qfloat.MustNew(2.0, 0.0, "s")

	sum, err := m.Add(km)
	require.NoError(t, err)
	requireItem(t, sum, 1001, 100)
	assert.Equal(t, "m", sum.Unit().String())

	speed, err := m.Div(s)
	require.NoError(t, err)
	requireItem(t, speed, 0.5, 0)
	assert.Equal(t, "m / s", speed.Unit().String())

	prod, err := m.Mul(s)
	require.NoError(t, err)
	assert.Equal(t, "m s", prod.Unit().String())

	area, err := qfloat.MustNew(2.0, 0.1, "m").Pow(2)
	require.NoError(t, err)
	requireItem(t, area, 4, 0.4)
	assert.True(t, area.Unit().Equal(units.MustParse("m2")))

	ratio, err := qfloat.MustNew(7.0, 0, "m").FloorDiv(qfloat.MustNew(2.0, 0, "m"))
	require.NoError(t, err)
	requireItem(t, ratio, 3, 0)
	assert.True(t, ratio.Unit().IsDimensionless())

	velocity, err := qfloat.New(1.0, 0.1, "km s-1")
	require.NoError(t, err)
	assert.Equal(t, "km / s", velocity.Unit().String())

	for name, run := range map[string]func() (*qfloat.QFloat, error){
		"add m s":        func() (*qfloat.QFloat, error) { return m.Add(s) },
		"sub m s":        func() (*qfloat.QFloat, error) { return m.Sub(s) },
		"mod m s":        func() (*qfloat.QFloat, error) { return m.Mod(s) },
		"add plain to m": func() (*qfloat.QFloat, error) { return m.Add(1.0) },
		"exponent unit":  func() (*qfloat.QFloat, error) { return m.Pow(s) },
		"fractional exp": func() (*qfloat.QFloat, error) { return m.Pow(0.5) },
		"array exponent": func() (*qfloat.QFloat, error) { return m.Pow([]float64{1, 2}) },
	} {
		_, err := run()
		require.ErrorIs(t, err, qfloat.ErrUnitIncompatible, name)
	}

	_, err = m.Add(s)
	require.ErrorIs(t, err, units.ErrIncompatible)
}

func TestQFloat_DimensionlessComposesUnits(t *testing.T) {
	t.Parallel()

	n := qfloat.MustNew(2.0, 0.1, "")
	length := qfloat.MustNew(3.0, 0.1, "m")

	cases := []struct {
		name     string
		run      func() (*qfloat.QFloat, error)
		nominal  float64
		std      float64
		unit     string
		wantDims units.Unit
	}{
		{
			name:     "dimensionless times m",
			run:      func() (*qfloat.QFloat, error) { return n.Mul(length) },
			nominal:  6,
			std:      math.Sqrt(0.13),
			unit:     "m",
			wantDims: units.Meter,
		},
		{
			name:     "dimensionless over m",
			run:      func() (*qfloat.QFloat, error) { return n.Div(length) },
			nominal:  2.0 / 3,
			std:      math.Hypot(0.1/3, 2*0.1/9),
			unit:     "1 / m",
			wantDims: units.Dimensionless.Div(units.Meter),
		},
		{
			name:     "m times plain",
			run:      func() (*qfloat.QFloat, error) { return length.Mul(2.0) },
			nominal:  6,
			std:      0.2,
			unit:     "m",
			wantDims: units.Meter,
		},
		{
			name:     "plain over m",
			run:      func() (*qfloat.QFloat, error) { return qfloat.MustNew(2.0, nil, "").Div(length) },
			nominal:  2.0 / 3,
			std:      2 * 0.1 / 9,
			unit:     "1 / m",
			wantDims: units.Dimensionless.Div(units.Meter),
		},
		{
			name:     "dimensionless times unit",
			run:      func() (*qfloat.QFloat, error) { return n.Mul(units.Second) },
			nominal:  2,
			std:      0.1,
			unit:     "s",
			wantDims: units.Second,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.run()
			require.NoError(t, err)
			requireItem(t, got, tc.nominal, tc.std)
			assert.Equal(t, tc.unit, got.Unit().String())
			assert.True(t, got.Unit().Equal(tc.wantDims))
		})
	}
}

func TestQFloat_Broadcasting(t *testing.T) {
	t.Parallel()

	v := qfloat.MustNew([]float64{1, 2, 3}, []float64{0.1, 0.1, 0.1}, "m")
	out, err := v.Mul(2.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, out.Nominal().Data())
	assert.InDeltaSlice(t, []float64{0.2, 0.2, 0.2}, out.Uncertainty().Data(), tol)

	_, err = v.Add(qfloat.MustNew([]float64{1, 2}, nil, "m"))
	require.ErrorIs(t, err, qfloat.ErrShapeMismatch)

	_, err = v.Add("x")
	require.ErrorIs(t, err, qfloat.ErrUnsupportedOperand)
}

func TestQFloat_DegeneracyIsNotAnError(t *testing.T) {
	t.Parallel()

	out, err := qfloat.MustNew(1.0, 0.1, "").Div(qfloat.MustNew(0.0, 0.1, ""))
	require.NoError(t, err)
	v, s, err := out.Item()
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
	assert.True(t, math.IsNaN(s) || math.IsInf(s, 1))
}

func TestQFloat_Conversion(t *testing.T) {
	t.Parallel()

	rad, err := qfloat.MustNew(180.0, 0.1, "deg").To("rad")
	require.NoError(t, err)
	requireItem(t, rad, math.Pi, math.Pi/1800)
	assert.InDelta(t, 0.00174533, rad.Uncertainty().Data()[0], 1e-8)
	assert.True(t, rad.Unit().Equal(units.Radian))

	km := qfloat.MustNew([]float64{1, 2.5}, []float64{0.01, 0.02}, "km")
	m, err := km.To("m")
	require.NoError(t, err)
	back, err := m.ToUnit(km.Unit())
	require.NoError(t, err)
	assert.True(t, back.Nominal().EqualApprox(km.Nominal(), 1e-12))
	assert.True(t, back.Uncertainty().EqualApprox(km.Uncertainty(), 1e-12))

	_, err = km.To("s")
	require.ErrorIs(t, err, qfloat.ErrUnitIncompatible)
	require.ErrorIs(t, err, units.ErrIncompatible)
	_, err = km.To("parsnip")
	require.ErrorIs(t, err, units.ErrUnknownUnit)
}

func TestQFloat_Comparisons(t *testing.T) {
	t.Parallel()

	eq, err := qfloat.MustNew(1000.0, 1, "m").Equal(qfloat.MustNew(1.0, 0.5, "km"))
	require.NoError(t, err)
	assert.True(t, eq)

	ne, err := qfloat.MustNew(1.0, 0, "m").NotEqual(qfloat.MustNew(2.0, 0, "m"))
	require.NoError(t, err)
	assert.True(t, ne)

	v := qfloat.MustNew([]float64{1, 2, 3}, nil, "m")
	two := qfloat.MustNew(2.0, 0, "m")

	lt, err := v.Less(two)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, lt)
	le, err := v.LessEqual(two)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, le)
	gt, err := v.Greater(two)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, gt)
	ge, err := v.GreaterEqual(qfloat.MustNew(0.0015, 0, "km"))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, ge)

	_, err = v.Less(qfloat.MustNew(1.0, 0, "s"))
	require.ErrorIs(t, err, qfloat.ErrUnitIncompatible)
	_, err = v.Equal(qfloat.MustNew(1.0, 0, "s"))
	require.ErrorIs(t, err, qfloat.ErrUnitIncompatible)
	assert.False(t, v.Compatible(units.Second))
}

func TestQFloat_Reductions(t *testing.T) {
	t.Parallel()

	v := qfloat.MustNew([]float64{1, 2, 3}, []float64{0.1, 0.2, 0.2}, "adu")
	requireItem(t, v.Sum(), 6, 0.3)
	requireItem(t, v.Mean(), 2, 0.1)
	assert.Equal(t, "adu", v.Sum().Unit().String())
}

func TestFactory_WithoutUncertainty(t *testing.T) {
	t.Parallel()

	f := qfloat.NewFactory(qfloat.WithoutUncertainty())
	require.False(t, f.TracksUncertainty())
	a, err := f.New(1.0, 0.1, "m")
	require.NoError(t, err)
	b, err := f.Scalar(2, 0.2, "m")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	requireItem(t, sum, 3, 0)

	// Settings follow the receiver, also through ufuncs.
	ang, err := f.New(90.0, 1.0, "deg")
	require.NoError(t, err)
	s, err := ang.Sin()
	require.NoError(t, err)
	requireItem(t, s, 1, 0)

	arr, err := f.FromArrays(ndarray.FromSlice([]float64{1, 2}), ndarray.FromSlice([]float64{0.1, 0.1}), units.Meter)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, arr.Uncertainty().Data())
}

func TestFactory_Logger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	f := qfloat.NewFactory(qfloat.WithLogger(zap.New(core)))
	a, err := f.New(1.0, 0.1, "")
	require.NoError(t, err)

	_, err = a.Div(qfloat.MustNew(0.0, 0.1, ""))
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("degenerate uncertainty propagation").Len())
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { qfloat.WithDerivativeStep(0) })
	require.Panics(t, func() { qfloat.WithDerivativeStep(math.NaN()) })
	require.NotPanics(t, func() { qfloat.WithDerivativeStep(1e-6) })
	require.NotPanics(t, func() { qfloat.NewFactory(qfloat.WithLogger(nil)) })
}

func TestQFloat_JSON(t *testing.T) {
	t.Parallel()

	q := qfloat.MustNew([][]float64{{1, 2}, {3, 4}}, 0.5, "km / s")
	data, err := q.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"nominal":[1,2,3,4],"uncertainty":[0.5,0.5,0.5,0.5],"shape":[2,2],"unit":"km / s"}`,
		string(data))

	var back qfloat.QFloat
	require.NoError(t, back.UnmarshalJSON(data))
	eq, err := back.Equal(q)
	require.NoError(t, err)
	assert.True(t, eq)
	assert.Equal(t, q.Uncertainty().Data(), back.Uncertainty().Data())
	assert.Equal(t, []int{2, 2}, back.Shape())

	scalar := qfloat.MustNew(3.0, 0.25, "")
	data, err = scalar.MarshalJSON()
	require.NoError(t, err)
	var s qfloat.QFloat
	require.NoError(t, s.UnmarshalJSON(data))
	assert.Equal(t, 0, s.Ndim())
	requireItem(t, &s, 3, 0.25)

	require.Error(t, s.UnmarshalJSON([]byte(`{"nominal":[1],"shape":[1],"unit":"parsnip"}`)))
	require.Error(t, s.UnmarshalJSON([]byte(`{"nominal":[1,2],"shape":[3],"unit":""}`)))
	require.Error(t, s.UnmarshalJSON([]byte(`{"nominal":[1],"uncertainty":[-1],"shape":[1],"unit":""}`)))
}

func TestQFloat_JSONKeepsReceiverSettings(t *testing.T) {
	t.Parallel()

	data := []byte(`{"nominal":[4],"uncertainty":[0.5],"shape":[1],"unit":"km s-1"}`)

	plain, err := qfloat.NewFactory(qfloat.WithoutUncertainty()).New(0.0, nil, "")
	require.NoError(t, err)
	require.NoError(t, plain.UnmarshalJSON(data))
	requireItem(t, plain, 4, 0)
	assert.Equal(t, "km / s", plain.Unit().String())

	next, err := plain.Add(qfloat.MustNew(1.0, 0.3, "km / s"))
	require.NoError(t, err)
	requireItem(t, next, 5, 0)

	var tracked qfloat.QFloat
	require.NoError(t, tracked.UnmarshalJSON(data))
	requireItem(t, &tracked, 4, 0.5)
}

// TestQFloat_RoundTrips covers the algebraic identities a quantity type must keep.
func TestQFloat_RoundTrips(t *testing.T) {
	t.Parallel()

	a := qfloat.MustNew([]float64{1.5, -2, 1e6}, []float64{0.1, 0.2, 3}, "km")
	b := qfloat.MustNew([]float64{250, 1, 7}, []float64{1, 1, 1}, "m")

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Sub(b)
	require.NoError(t, err)
	assert.True(t, back.Nominal().EqualApprox(a.Nominal(), 1e-9))
	assert.True(t, back.Unit().Equal(a.Unit()))
	for i, s := range back.Uncertainty().Data() {
		assert.GreaterOrEqual(t, s, a.Uncertainty().Data()[i], "uncertainty of element %d shrank", i)
	}

	for _, u := range []string{"m", "pc", "AU", "cm"} {
		conv, err := a.To(u)
		require.NoError(t, err, u)
		again, err := conv.ToUnit(a.Unit())
		require.NoError(t, err, u)
		assert.True(t, again.Nominal().EqualApprox(a.Nominal(), 1e-9), u)
		assert.True(t, again.Uncertainty().EqualApprox(a.Uncertainty(), 1e-9), u)
	}

	s, err := ndarray.Sin(qfloat.MustNew(90.0, 0.05, "deg"))
	require.NoError(t, err)
	requireItem(t, s, 1, 0)
	assert.True(t, s.Unit().IsDimensionless())

	f, err := ndarray.Flip(qfloat.MustNew([]float64{1, 2, 3}, []float64{0.1, 0.2, 0.3}, ""))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1}, f.Nominal().Data())
	assert.Equal(t, []float64{0.3, 0.2, 0.1}, f.Uncertainty().Data())
}

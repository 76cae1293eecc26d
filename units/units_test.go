package units_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/unit"

	"github.com/katalvlaran/astrokit/units"
)

func TestUnit_Parse(t *testing.T) {
	t.Parallel()

	velocity := units.Meter.Div(units.Second)
	cases := []struct {
		in    string
		equal units.Unit
		scale float64
	}{
		{in: "m", equal: units.Meter, scale: 1},
		{in: "", equal: units.Dimensionless, scale: 1},
		{in: "dimensionless", equal: units.Dimensionless, scale: 1},
		{in: "m/s", equal: velocity, scale: 1},
		{in: "m s^-1", equal: velocity, scale: 1},
		{in: "m s-1", equal: velocity, scale: 1},
		{in: "km s**-1", equal: velocity, scale: 1e3},
		{in: "m2", equal: units.Meter.Pow(2), scale: 1},
		{in: "m**2", equal: units.Meter.Pow(2), scale: 1},
		{in: "deg", equal: units.Degree, scale: math.Pi / 180},
		{in: "e-", equal: units.Electron, scale: 1},
		{in: "adu / s", equal: units.ADU.Div(units.Second), scale: 1},
		{in: "1/s", equal: units.Dimensionless.Div(units.Second), scale: 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			u, err := units.Parse(tc.in)
			require.NoError(t, err)
			require.True(t, u.SameDimensions(tc.equal), "dimensions of %q", tc.in)
			require.InDelta(t, tc.scale, u.Scale(), 1e-12*tc.scale)
		})
	}
}

func TestUnit_ParseErrors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"parsnip", "m/furlong", "m^x", "m/", "2"} {
		_, err := units.Parse(in)
		require.Error(t, err, in)
	}
	_, err := units.Parse("parsnip")
	require.ErrorIs(t, err, units.ErrUnknownUnit)
	_, err = units.Parse("m^x")
	require.ErrorIs(t, err, units.ErrBadExponent)
}

func TestUnit_Factor(t *testing.T) {
	t.Parallel()

	f, err := units.Factor(units.MustParse("km"), units.Meter)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, f)

	f, err = units.Factor(units.Degree, units.Radian)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/180, f, 1e-15)

	f, err = units.Factor(units.MustParse("mmag"), units.Magnitude)
	require.NoError(t, err)
	assert.InDelta(t, 1e-3, f, 1e-18)

	_, err = units.Factor(units.Meter, units.Second)
	require.ErrorIs(t, err, units.ErrIncompatible)
	_, err = units.Factor(units.Dimensionless, units.Meter)
	require.ErrorIs(t, err, units.ErrIncompatible)
}

func TestUnit_Composition(t *testing.T) {
	t.Parallel()

	area := units.Meter.Mul(units.Meter)
	require.True(t, area.Equal(units.MustParse("m2")))
	require.Equal(t, unit.Dimensions{unit.LengthDim: 2}, area.Dimensions())

	ratio := units.MustParse("km").Div(units.Meter)
	require.True(t, ratio.IsDimensionless())
	require.InDelta(t, 1000, ratio.Scale(), 1e-9)

	require.True(t, units.Meter.Div(units.Meter).Equal(units.Dimensionless))
	require.True(t, units.Meter.Pow(0).Equal(units.Dimensionless))

	root, err := area.Root(2)
	require.NoError(t, err)
	require.True(t, root.Equal(units.Meter))

	_, err = units.Meter.Root(2)
	require.ErrorIs(t, err, units.ErrIncompatible)
	_, err = units.Meter.Root(0)
	require.ErrorIs(t, err, units.ErrBadExponent)
}

func TestUnit_DimensionlessComposition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		got  func() units.Unit
		want units.Unit
		str  string
	}{
		{"dimensionless times m", func() units.Unit { return units.Dimensionless.Mul(units.Meter) }, units.Meter, "m"},
		{"dimensionless over s", func() units.Unit { return units.Dimensionless.Div(units.Second) }, units.MustParse("1/s"), "1 / s"},
		{"zero value times km", func() units.Unit { return units.Unit{}.Mul(units.MustParse("km")) }, units.MustParse("km"), "km"},
		{"dimensionless squared", func() units.Unit { return units.Dimensionless.Mul(units.Dimensionless) }, units.Dimensionless, ""},
		{"dimensionless over dimensionless", func() units.Unit { return units.Dimensionless.Div(units.Dimensionless) }, units.Dimensionless, ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var u units.Unit
			require.NotPanics(t, func() { u = tc.got() })
			assert.True(t, u.Equal(tc.want))
			assert.Equal(t, tc.str, u.String())
		})
	}

	// Composition must not write through to the shared registry values.
	_ = units.Dimensionless.Mul(units.Meter)
	assert.True(t, units.Dimensionless.IsDimensionless())
	assert.Equal(t, unit.Dimensions{unit.LengthDim: 1}, units.Meter.Dimensions())

	for _, in := range []string{"m/s", "m2", "km s-1", "adu / s", "1/s", "electron s^-1 pix^-2"} {
		require.NotPanics(t, func() {
			_, err := units.Parse(in)
			assert.NoError(t, err, in)
		}, in)
	}
}

func TestUnit_Predicates(t *testing.T) {
	t.Parallel()

	require.True(t, units.Degree.IsAngle())
	require.True(t, units.MustParse("arcsec").IsAngle())
	require.False(t, units.Meter.IsAngle())
	require.True(t, units.Dimensionless.IsDimensionless())
	require.False(t, units.Magnitude.IsDimensionless())
	require.False(t, units.Degree.Equal(units.Radian))
}

func TestUnit_CanonicalNames(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"km / s":   "km / s",
		"km s-1":   "km / s",
		"m**2":     "m^2",
		"1/s":      "1 / s",
		"m/m":      "",
		"adu s^-2": "adu / s^2",
		"":         "",
	}
	for in, want := range cases {
		u, err := units.Parse(in)
		require.NoError(t, err, in)
		require.Equal(t, want, u.String(), in)

		back, err := units.Parse(u.String())
		require.NoError(t, err, in)
		require.True(t, back.Equal(u), in)
	}

	root, err := units.MustParse("m2").Root(2)
	require.NoError(t, err)
	require.Equal(t, "m", root.String())
	require.Equal(t, "m / s", units.Meter.Div(units.Second).String())
	require.Equal(t, "m s", units.Meter.Mul(units.Second).String())
}

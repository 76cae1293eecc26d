// SPDX-License-Identifier: MIT

// Package units - built-in unit registry.
//
// The registry is filled at package init and read-only afterwards, so
// lookups are safe from any goroutine.

package units

import (
	"math"

	"gonum.org/v1/gonum/unit"
)

// Astronomy-specific orthogonal dimensions.
var (
	MagnitudeDim = unit.NewDimension("mag")
	ADUDim       = unit.NewDimension("adu")
	ElectronDim  = unit.NewDimension("electron")
	PixelDim     = unit.NewDimension("pix")
)

// Frequently used units.
var (
	Dimensionless = Unit{}
	Radian        = Define("rad", 1, unit.Dimensions{unit.AngleDim: 1})
	Degree        = Define("deg", math.Pi/180, unit.Dimensions{unit.AngleDim: 1})
	Meter         = Define("m", 1, unit.Dimensions{unit.LengthDim: 1})
	Second        = Define("s", 1, unit.Dimensions{unit.TimeDim: 1})
	Kilogram      = Define("kg", 1, unit.Dimensions{unit.MassDim: 1})
	Kelvin        = Define("K", 1, unit.Dimensions{unit.TemperatureDim: 1})
	Magnitude     = Define("mag", 1, unit.Dimensions{MagnitudeDim: 1})
	ADU           = Define("adu", 1, unit.Dimensions{ADUDim: 1})
	Electron      = Define("electron", 1, unit.Dimensions{ElectronDim: 1})
	Pixel         = Define("pix", 1, unit.Dimensions{PixelDim: 1})
)

// SI scale factors of the registered units.
const (
	astronomicalUnit = 1.495978707e11
	parsec           = 3.0856775814913673e16
	lightYear        = 9.4607304725808e15
	julianYear       = 365.25 * 86400
	solarMass        = 1.988409870698051e30
	jansky           = 1e-26
)

var registry = map[string]Unit{}

func init() {
	length := unit.Dimensions{unit.LengthDim: 1}
	tm := unit.Dimensions{unit.TimeDim: 1}
	mass := unit.Dimensions{unit.MassDim: 1}
	angle := unit.Dimensions{unit.AngleDim: 1}
	energy := unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2}
	power := unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -3}
	// W m^-2 Hz^-1
	fluxDensity := unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -2}

	defs := []struct {
		names []string
		scale float64
		dims  unit.Dimensions
	}{
		{[]string{"m", "meter"}, 1, length},
		{[]string{"km"}, 1e3, length},
		{[]string{"cm"}, 1e-2, length},
		{[]string{"mm"}, 1e-3, length},
		{[]string{"um", "micron"}, 1e-6, length},
		{[]string{"nm"}, 1e-9, length},
		{[]string{"Angstrom", "AA"}, 1e-10, length},
		{[]string{"AU", "au"}, astronomicalUnit, length},
		{[]string{"pc"}, parsec, length},
		{[]string{"kpc"}, 1e3 * parsec, length},
		{[]string{"Mpc"}, 1e6 * parsec, length},
		{[]string{"lyr", "lightyear"}, lightYear, length},

		{[]string{"s", "second"}, 1, tm},
		{[]string{"ms"}, 1e-3, tm},
		{[]string{"min"}, 60, tm},
		{[]string{"h", "hour"}, 3600, tm},
		{[]string{"d", "day"}, 86400, tm},
		{[]string{"yr", "year"}, julianYear, tm},

		{[]string{"kg"}, 1, mass},
		{[]string{"g"}, 1e-3, mass},
		{[]string{"Msun", "solMass"}, solarMass, mass},

		{[]string{"rad", "radian"}, 1, angle},
		{[]string{"deg", "degree"}, math.Pi / 180, angle},
		{[]string{"arcmin"}, math.Pi / 10800, angle},
		{[]string{"arcsec"}, math.Pi / 648000, angle},
		{[]string{"mas"}, math.Pi / 648000000, angle},

		{[]string{"Hz"}, 1, unit.Dimensions{unit.TimeDim: -1}},
		{[]string{"J"}, 1, energy},
		{[]string{"erg"}, 1e-7, energy},
		{[]string{"W"}, 1, power},
		{[]string{"Jy"}, jansky, fluxDensity},
		{[]string{"K"}, 1, unit.Dimensions{unit.TemperatureDim: 1}},

		{[]string{"mag"}, 1, unit.Dimensions{MagnitudeDim: 1}},
		{[]string{"mmag"}, 1e-3, unit.Dimensions{MagnitudeDim: 1}},
		{[]string{"adu", "ADU"}, 1, unit.Dimensions{ADUDim: 1}},
		{[]string{"electron", "e-"}, 1, unit.Dimensions{ElectronDim: 1}},
		{[]string{"pix", "pixel"}, 1, unit.Dimensions{PixelDim: 1}},
	}
	for _, d := range defs {
		for _, n := range d.names {
			registry[n] = Define(n, d.scale, d.dims)
		}
	}
}

// Lookup returns a registered unit by exact symbol.
func Lookup(symbol string) (Unit, bool) {
	u, ok := registry[symbol]

	return u, ok
}

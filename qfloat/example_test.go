package qfloat_test

import (
	"fmt"

	"github.com/katalvlaran/astrokit/ndarray"
	"github.com/katalvlaran/astrokit/qfloat"
)

// ExampleQFloat_Add adds two uncorrelated measurements.
func ExampleQFloat_Add() {
	a := qfloat.MustNew(1.0, 0.1, "")
	b := qfloat.MustNew(2.0, 0.2, "")
	c, _ := a.Add(b)
	v, s, _ := c.Item()
	fmt.Printf("%.4g +- %.4f\n", v, s)
	// Output:
	// 3 +- 0.2236
}

// ExampleQFloat_To converts an angle and its uncertainty.
func ExampleQFloat_To() {
	rad, _ := qfloat.MustNew(180.0, 0.1, "deg").To("rad")
	v, s, _ := rad.Item()
	fmt.Printf("%.5f +- %.8f %s\n", v, s, rad.Unit())
	// Output:
	// 3.14159 +- 0.00174533 rad
}

// ExampleQFloat_UFunc runs a numeric-library function on a quantity.
func ExampleQFloat_UFunc() {
	s, _ := ndarray.Sin(qfloat.MustNew(90.0, 0, "deg"))
	fmt.Println(s)

	_, err := ndarray.Sin(qfloat.MustNew(1.0, 0, "m"))
	fmt.Println(err != nil)
	// Output:
	// 1+-0
	// true
}

// ExampleQFloat_Append joins values in different but compatible units.
func ExampleQFloat_Append() {
	m := qfloat.MustNew([]float64{1, 2}, []float64{0.1, 0.1}, "m")
	out, _ := m.Append(qfloat.MustNew(1.0, 0.1, "km"))
	fmt.Println(out)
	// Output:
	// [1 2 1000]+-[0.1 0.1 100] m
}

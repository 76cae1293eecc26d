package deriv_test

import (
	"fmt"

	"github.com/katalvlaran/astrokit/deriv"
)

// ExamplePropagate2Scalar propagates (1 ± 0.1) + (2 ± 0.2).
func ExamplePropagate2Scalar() {
	s, _ := deriv.Propagate2Scalar(deriv.OpAdd, 3, 1, 2, 0.1, 0.2)
	fmt.Printf("%.4f\n", s)
	// Output:
	// 0.2236
}

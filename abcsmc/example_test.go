// SPDX-License-Identifier: MIT

package abcsmc_test

import (
	"fmt"

	"github.com/katalvlaran/nbkit/abcsmc"
)

// ExampleQuantile shows the interpolated 80% quantile used for thresholds.
func ExampleQuantile() {
	fmt.Printf("%.2f\n", abcsmc.Quantile([]float64{1, 2, 3, 4, 5}, 0.8))
	// Output: 4.20
}

// SPDX-License-Identifier: MIT

package editdist_test

import (
	"fmt"

	"github.com/katalvlaran/tieralign/editdist"
)

// ExampleAlign aligns a short transcript against a recognised word list with
// unit costs. One extra source token is deleted and one is substituted.
func ExampleAlign() {
	res := editdist.Align([]string{"a", "b"}, []string{"a", "c", "d"}, nil)
	fmt.Println(res.Distance, res.Path)
	// Output: 2 [{0 0} {1 1} {1 2} {2 3}]
}

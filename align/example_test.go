package align_test

import (
	"fmt"

	"honnef.co/go/morph/align"
)

func ExampleAlign() {
	a := []string{"M", "L", "L", "Z"}
	b := []string{"M", "L", "Z"}
	al := align.Align(a, b, func(x, y string) float64 {
		if x == y {
			return 1
		}
		return -1
	})
	for k := range al.Len() {
		fmt.Println(al.A[k], al.B[k])
	}
	fmt.Println(al.Score)
	// Output:
	// M M
	// L -
	// L L
	// Z Z
	// 3
}

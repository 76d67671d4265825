package morph_test

import (
	"fmt"

	"honnef.co/go/morph"
	"honnef.co/go/morph/svgpath"
)

func ExampleAutoFix() {
	from := svgpath.MustParse("M0 0 L10 0 L10 10 Z")
	to := svgpath.MustParse("M0 0 L10 0 Z")

	res, err := morph.AutoFix(0, from, to, morph.Options{})
	if err != nil {
		panic(err)
	}
	fmt.Println(svgpath.Format(res.From, svgpath.Options{}))
	fmt.Println(svgpath.Format(res.To, svgpath.Options{}))
	fmt.Println(res.Status)
	// Output:
	// M0,0 L10,0 L10,10 Z
	// M0,0 L10,0 L5,0 Z
	// Reconciled
}

func ExampleAutoConvert() {
	from := svgpath.MustParse("M0 0 Q5 5 10 0 L0 0")
	to := svgpath.MustParse("M0 0 L10 0 Z")

	res, err := morph.AutoConvert(0, from, to, morph.Options{})
	if err != nil {
		panic(err)
	}
	fmt.Println(svgpath.Format(res.To, svgpath.Options{}))
	// Output:
	// M0,0 Q5,0 10,0 L0,0
}

func ExamplePath_ShiftBack() {
	p := svgpath.MustParse("M0 0 L10 0 L10 10 Z")
	fmt.Println(svgpath.Format(p.ShiftBack(0, 1), svgpath.Options{}))
	// Output:
	// M10,10 L0,0 L10,0 Z
}

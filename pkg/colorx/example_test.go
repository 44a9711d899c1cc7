package colorx_test

import (
	"fmt"

	"github.com/crayonviz/crayon/pkg/colorx"
)

func ExampleAdjust() {
	// Lighten a brand color for a highlight tone
	fmt.Println(colorx.Adjust("#336699", 15, 0))

	// Darken and desaturate for a shadow tone
	fmt.Println(colorx.Adjust("#336699", -15, -0.2))

	// Unknown strings pass through untouched
	fmt.Println(colorx.Adjust("url(#scribble)", 15, 0))
	// Output:
	// rgb(83, 140, 198)
	// rgb(45, 64, 83)
	// url(#scribble)
}

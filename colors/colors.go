package colors

// package colors contains functions to quickly and easily generate hellosphere.Color instances by name (i.e. "Black()", "Red()", etc).

import "github.com/solarlune/hellosphere"

// White generates a hellosphere.Color instance of the provided name.
func White() hellosphere.Color {
	return hellosphere.NewColor(1, 1, 1, 1)
}

// Black generates a hellosphere.Color instance of the provided name. It's the background the sphere is drawn over.
func Black() hellosphere.Color {
	return hellosphere.NewColor(0, 0, 0, 1)
}

// Red generates a hellosphere.Color instance of the provided name. It's the color the sphere is drawn with.
func Red() hellosphere.Color {
	return hellosphere.NewColor(1, 0, 0, 1)
}

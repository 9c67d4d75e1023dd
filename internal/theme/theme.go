package theme

type Theme interface {
	// RenderBar draws a horizontal bar of length cells for a star rating.
	RenderBar(stars float64, length int) string
}

type Color struct {
	R, G, B uint8
}

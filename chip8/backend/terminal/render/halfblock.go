package render

// GetHalfBlockChar returns the character packing two vertically adjacent
// monochrome pixels into one terminal cell. A nonzero pixel is lit.
func GetHalfBlockChar(top, bottom byte) rune {
	switch {
	case top != 0 && bottom != 0:
		return '█'
	case top != 0:
		return '▀'
	case bottom != 0:
		return '▄'
	default:
		return ' '
	}
}

package memory

// FontAddress is where the built-in hex digit font lives. It sits in the
// interpreter-reserved area below ProgramStart, so programs cannot clobber
// it by accident (writes there still work, as on real interpreters).
const FontAddress uint16 = 0x000

// GlyphSize is the number of bytes per font glyph. Glyph for digit n is at
// FontAddress + n*GlyphSize.
const GlyphSize uint16 = 5

// fontData holds the 16 hex digit glyphs, 5 bytes each, one row per byte
// with the sprite in the high nibble.
var fontData = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// GlyphAddress returns the address of the font sprite for a hex digit.
// Only the low nibble of the digit is used.
func GlyphAddress(digit uint8) uint16 {
	return FontAddress + uint16(digit&0xF)*GlyphSize
}

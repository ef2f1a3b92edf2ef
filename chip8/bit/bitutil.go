package bit

// Combine joins two bytes into a 16-bit word, high byte first.
func Combine(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// High returns the most significant byte of a word.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// Low returns the least significant byte of a word.
func Low(value uint16) uint8 {
	return uint8(value)
}

// IsSet checks if the bit at the given position is set, counting
// from bit 7 (leftmost) down to bit 0.
func IsSet(pos uint8, value uint8) bool {
	return value&(0x80>>pos) != 0
}

// Nibble extracts one of the four 4-bit nibbles of a word.
// Position 0 is the most significant nibble.
func Nibble(pos uint8, value uint16) uint8 {
	shift := (3 - pos) * 4
	return uint8(value>>shift) & 0xF
}

package memory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadListing loads a program from a memory listing: a text format where
// each non-empty line holds an address and a byte value as hex numbers,
// with an optional 0x prefix, for example:
//
//	0x200 0x60
//	0x201 0x0A
//
// Addresses must fall in the program area [ProgramStart, Size). Parse
// errors report the offending line number.
func (m *Memory) LoadListing(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		address, value, err := parseListingLine(text)
		if err != nil {
			return fmt.Errorf("listing line %d: %v", line, err)
		}
		m.data[address] = value
	}
	return scanner.Err()
}

func parseListingLine(text string) (uint16, byte, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("expected address and data, got %q", text)
	}

	address, err := parseHex(fields[0], 16)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid address %q", fields[0])
	}
	data, err := parseHex(fields[1], 8)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid data %q", fields[1])
	}

	if address >= Size {
		return 0, 0, fmt.Errorf("address 0x%04X too high, memory size is 0x%04X", address, Size)
	}
	if address < uint64(ProgramStart) {
		return 0, 0, fmt.Errorf("address 0x%04X too low, programs start at 0x%04X", address, ProgramStart)
	}

	return uint16(address), byte(data), nil
}

func parseHex(s string, bits int) (uint64, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	return strconv.ParseUint(s, 16, bits)
}

package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_fontPreloaded(t *testing.T) {
	m := New()

	// Glyph for 0 starts with 0xF0, glyph for F ends with 0x80.
	b, err := m.Read(GlyphAddress(0x0))
	require.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)

	b, err = m.Read(GlyphAddress(0xF) + 4)
	require.NoError(t, err)
	assert.Equal(t, byte(0x80), b)
}

func TestMemory_readWrite(t *testing.T) {
	m := New()

	require.NoError(t, m.Write(0x300, 0xAB))
	b, err := m.Read(0x300)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)
}

func TestMemory_fault(t *testing.T) {
	m := New()

	_, err := m.Read(Size)
	assert.ErrorAs(t, err, &Fault{})

	err = m.Write(0xFFFF, 0)
	assert.ErrorAs(t, err, &Fault{})

	// Word read straddling the end of memory faults too.
	_, err = m.ReadWord(Size - 1)
	assert.ErrorAs(t, err, &Fault{})
}

func TestMemory_readWord(t *testing.T) {
	m := New()
	require.NoError(t, m.Write(0x200, 0xD0))
	require.NoError(t, m.Write(0x201, 0x15))

	word, err := m.ReadWord(0x200)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xD015), word)
}

func TestMemory_loadProgram(t *testing.T) {
	m := New()
	require.NoError(t, m.LoadProgram([]byte{0x60, 0x0A, 0x70, 0x05}))

	word, err := m.ReadWord(ProgramStart)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x600A), word)

	word, err = m.ReadWord(ProgramStart + 2)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x7005), word)
}

func TestMemory_loadProgramTooLarge(t *testing.T) {
	m := New()
	err := m.LoadProgram(make([]byte, Size-int(ProgramStart)+1))
	assert.Error(t, err)
}

package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadListing(t *testing.T) {
	listing := `
0x200 0x60
0x201 0x0A

202 70
0x203 05
`
	m := New()
	require.NoError(t, m.LoadListing(strings.NewReader(listing)))

	word, err := m.ReadWord(0x200)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x600A), word)

	word, err = m.ReadWord(0x202)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x7005), word)
}

func TestLoadListing_errors(t *testing.T) {
	testCases := []struct {
		desc    string
		listing string
		wantErr string
	}{
		{desc: "missing data", listing: "0x200", wantErr: "line 1"},
		{desc: "bad address", listing: "zz 0x60", wantErr: "invalid address"},
		{desc: "bad data", listing: "0x200 zz", wantErr: "invalid data"},
		{desc: "address too low", listing: "0x1FF 0x60", wantErr: "too low"},
		{desc: "address too high", listing: "0x1000 0x60", wantErr: "too high"},
		{desc: "line number reported", listing: "0x200 0x60\nbroken", wantErr: "line 2"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			m := New()
			err := m.LoadListing(strings.NewReader(tC.listing))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tC.wantErr)
		})
	}
}

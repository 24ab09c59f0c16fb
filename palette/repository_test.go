package palette

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryLoadPreservesOrderAndHex(t *testing.T) {
	const n, m = 12, 4
	raw := make([][]string, n)
	for i := range raw {
		row := make([]string, m)
		for j := range row {
			row[j] = fmt.Sprintf("#%02X%02x%02X", i*20, j*50, 255-i)
		}
		raw[i] = row
	}

	repo := NewRepository()
	require.NoError(t, repo.Load(raw))
	require.Equal(t, n, repo.Len())

	matched := repo.Match(MustHexToHSL("ff0000"), 1000)
	require.Len(t, matched, n)
	for i, scheme := range matched {
		assert.Equal(t, raw[i], scheme.Hexes())
	}
}

func TestRepositoryLoadAccumulates(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.Load([][]string{{"ff0000"}}))
	require.NoError(t, repo.Load([][]string{{"00ff00"}, {"0000ff"}}))

	schemes := repo.Schemes()
	require.Len(t, schemes, 3)
	assert.Equal(t, "ff0000", schemes[0][0].SourceHex)
	assert.Equal(t, "00ff00", schemes[1][0].SourceHex)
	assert.Equal(t, "0000ff", schemes[2][0].SourceHex)
}

func TestRepositoryLoadIsAtomic(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.Load([][]string{{"ff0000", "00ff00"}}))

	err := repo.Load([][]string{{"0000ff"}, {"ffffff", "nothex"}})
	require.ErrorIs(t, err, ErrInvalidColorFormat)
	assert.Equal(t, 1, repo.Len())
}

func TestRepositorySchemesIsACopy(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.Load([][]string{{"ff0000"}, {"00ff00"}}))

	schemes := repo.Schemes()
	schemes[0] = nil
	assert.Len(t, repo.Schemes()[0], 1)
}

func TestEmptySchemeNeverMatches(t *testing.T) {
	repo := NewRepository()
	require.NoError(t, repo.Load([][]string{{}, {"ff0000"}}))

	matched := repo.Match(MustHexToHSL("ff0000"), 1000)
	require.Len(t, matched, 1)
	assert.Equal(t, []string{"ff0000"}, matched[0].Hexes())
}

func TestSchemeContainsIsInclusive(t *testing.T) {
	scheme := Scheme{MustHexToHSL("ffa27f")}
	red := MustHexToHSL("ff0000")

	assert.True(t, scheme.Contains(red, 41))
	assert.False(t, scheme.Contains(red, 40))
}

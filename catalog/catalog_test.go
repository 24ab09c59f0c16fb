package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/color-game/schemefinder/palette"
)

func TestDefaultLoadsIntoRepository(t *testing.T) {
	rows, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	assert.Equal(t, []string{"01204e", "028391", "f6dcac", "feae6f"}, rows[0])
	for _, row := range rows {
		assert.Len(t, row, 4)
	}

	repo := palette.NewRepository()
	require.NoError(t, repo.Load(rows))
	assert.Equal(t, len(rows), repo.Len())
}

func TestDefaultRedMatches(t *testing.T) {
	rows, err := Default()
	require.NoError(t, err)

	f := palette.NewFinder(nil)
	require.NoError(t, f.Load(rows))

	matched := f.MatchingSchemes()
	require.NotEmpty(t, matched)
	assert.Equal(t, []string{"ff0000", "ffa27f", "ffe8c5", "97be5a"}, matched[0].Hexes())
}

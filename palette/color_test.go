package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		expected Color
	}{
		{"red", "ff0000", Color{0, 100, 50, "ff0000"}},
		{"red with hash uppercase", "#FF0000", Color{0, 100, 50, "#FF0000"}},
		{"white", "ffffff", Color{0, 0, 100, "ffffff"}},
		{"black", "000000", Color{0, 0, 0, "000000"}},
		{"grey", "eeeeee", Color{0, 0, 93, "eeeeee"}},
		{"green", "00ff00", Color{120, 100, 50, "00ff00"}},
		{"blue", "#0000ff", Color{240, 100, 50, "#0000ff"}},
		{"navy", "01204e", Color{216, 97, 15, "01204e"}},
		{"teal", "028391", Color{186, 97, 29, "028391"}},
		{"sand", "f6dcac", Color{39, 80, 82, "f6dcac"}},
		{"peach", "feae6f", Color{26, 99, 72, "feae6f"}},
		{"salmon", "ffa27f", Color{16, 100, 75, "ffa27f"}},
		{"olive green", "97be5a", Color{83, 43, 55, "97be5a"}},
		{"red just below wrap", "ff0001", Color{360, 100, 50, "ff0001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToHSL(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHexToHSLInvalid(t *testing.T) {
	inputs := []string{"bad", "", "#", "ff000", "ff00000", "##ff0000", "gg0000", "ff 000", "#ff000z", " ff0000"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := HexToHSL(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidColorFormat))

			var colorErr *ColorError
			require.True(t, errors.As(err, &colorErr))
			assert.Equal(t, in, colorErr.Input)
		})
	}
}

func TestHexToHSLRangeInvariant(t *testing.T) {
	for _, hex := range []string{"123456", "abcdef", "fedcba", "7f7f7f", "00ffff", "ff00ff", "808000"} {
		c, err := HexToHSL(hex)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c.Hue, 0)
		assert.LessOrEqual(t, c.Hue, 360)
		assert.GreaterOrEqual(t, c.Saturation, 0)
		assert.LessOrEqual(t, c.Saturation, 100)
		assert.GreaterOrEqual(t, c.Lightness, 0)
		assert.LessOrEqual(t, c.Lightness, 100)
	}
}

func TestMustHexToHSLPanics(t *testing.T) {
	assert.Panics(t, func() { MustHexToHSL("nope") })
	assert.NotPanics(t, func() { MustHexToHSL("#abcdef") })
}

func TestValidateTolerance(t *testing.T) {
	assert.NoError(t, ValidateTolerance(0))
	assert.NoError(t, ValidateTolerance(80))
	assert.ErrorIs(t, ValidateTolerance(-1), ErrToleranceOutOfRange)
	assert.ErrorIs(t, ValidateTolerance(81), ErrToleranceOutOfRange)
}

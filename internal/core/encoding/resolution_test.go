package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

func TestResolutionPixels(t *testing.T) {
	tests := map[string]int{
		"1920x1080": 2073600,
		"3840x2160": 8294400,
		"1366x768":  1049088,
		"1600x900":  1440000,
	}
	for raw, want := range tests {
		got, err := ResolutionPixels(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestResolutionPixelsRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "1920", "1920X1080", "axb", "1920x", "1920x1080x2", "-1920x1080"} {
		_, err := ResolutionPixels(raw)
		require.Error(t, err, raw)
		assert.True(t, domain.IsKind(err, domain.ErrParsing), raw)
	}
}

func TestResolutionPixelsPermissiveIgnoresExtraTokens(t *testing.T) {
	got, err := resolutionPixels("1920x1080x2", false)
	require.NoError(t, err)
	assert.Equal(t, 2073600, got)
}

func TestResolutionPixelsRejectsOverflow(t *testing.T) {
	for _, raw := range []string{"4294967296x4294967296", "3037000500x3037000500"} {
		for _, strict := range []bool{true, false} {
			got, err := resolutionPixels(raw, strict)
			require.Error(t, err, raw)
			assert.True(t, domain.IsKind(err, domain.ErrParsing), raw)
			assert.Zero(t, got)
		}
	}

	got, err := ResolutionPixels("3037000499x3037000499")
	require.NoError(t, err)
	assert.Equal(t, 3037000499*3037000499, got)
}

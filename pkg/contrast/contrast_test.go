package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio_BlackOnWhite(t *testing.T) {
	ratio, err := Ratio("#000000", "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 0.01)
}

func TestRatio_OrderIndependent(t *testing.T) {
	a, err := Ratio("#0f172a", "#f8fafc")
	require.NoError(t, err)
	b, err := Ratio("#f8fafc", "#0f172a")
	require.NoError(t, err)
	assert.InDelta(t, a, b, 1e-9)
}

func TestRatio_SameColour(t *testing.T) {
	ratio, err := Ratio("#6366f1", "#6366f1")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ratio, 1e-9)
}

func TestRatio_ShortHex(t *testing.T) {
	long, err := Ratio("#000000", "#ffffff")
	require.NoError(t, err)
	short, err := Ratio("#000", "#fff")
	require.NoError(t, err)
	assert.InDelta(t, long, short, 1e-9)
}

func TestRatio_InvalidColour(t *testing.T) {
	_, err := Ratio("not-a-colour", "#fff")
	assert.Error(t, err)

	_, err = Ratio("#fff", "")
	assert.Error(t, err)
}

func TestGrade(t *testing.T) {
	assert.Equal(t, LevelAAA, Grade(21))
	assert.Equal(t, LevelAAA, Grade(7.0))
	assert.Equal(t, LevelAA, Grade(4.5))
	assert.Equal(t, LevelAALarge, Grade(3.0))
	assert.Equal(t, LevelFail, Grade(2.9))
	assert.Equal(t, LevelFail, Grade(1))
}

func TestLuminance_Extremes(t *testing.T) {
	white, err := Luminance("#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, white, 1e-6)

	black, err := Luminance("#000000")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, black, 1e-6)
}

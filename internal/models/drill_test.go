package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/powerdrill/internal/models"
)

func TestPresetRange(t *testing.T) {
	tests := []struct {
		variant    models.Variant
		difficulty models.Difficulty
		max        int
	}{
		{models.VariantSquare, models.DifficultyEasy, 30},
		{models.VariantSquare, models.DifficultyMedium, 50},
		{models.VariantSquare, models.DifficultyHard, 100},
		{models.VariantCube, models.DifficultyEasy, 20},
		{models.VariantCube, models.DifficultyMedium, 30},
		{models.VariantCube, models.DifficultyHard, 50},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant)+"/"+string(tt.difficulty), func(t *testing.T) {
			r, ok := models.PresetRange(tt.variant, tt.difficulty)
			require.True(t, ok)
			assert.Equal(t, models.Range{Min: 1, Max: tt.max}, r)
		})
	}

	_, ok := models.PresetRange(models.VariantSquare, models.DifficultyCustom)
	assert.False(t, ok)
}

func TestVariantGlyphs(t *testing.T) {
	assert.Equal(t, 2, models.VariantSquare.Exponent())
	assert.Equal(t, 3, models.VariantCube.Exponent())
	assert.Equal(t, "²", models.VariantSquare.PowerGlyph())
	assert.Equal(t, "³", models.VariantCube.PowerGlyph())
	assert.Equal(t, "√", models.VariantSquare.RootGlyph())
	assert.Equal(t, "∛", models.VariantCube.RootGlyph())
}

func TestParse(t *testing.T) {
	v, err := models.ParseVariant(" Cube ")
	require.NoError(t, err)
	assert.Equal(t, models.VariantCube, v)

	_, err = models.ParseVariant("tesseract")
	assert.Error(t, err)

	m, err := models.ParseMode("INVERSE")
	require.NoError(t, err)
	assert.Equal(t, models.ModeInverse, m)

	_, err = models.ParseMode("sideways")
	assert.Error(t, err)

	d, err := models.ParseDifficulty("Custom")
	require.NoError(t, err)
	assert.True(t, d.IsCustom())

	_, err = models.ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Square", models.VariantSquare.Label())
	assert.Equal(t, "Inverse", models.ModeInverse.Label())
	assert.Equal(t, "Medium", models.DifficultyMedium.Label())
}

func TestHighScoreEntry_DisplayDate(t *testing.T) {
	e := models.HighScoreEntry{RecordedAt: time.Date(2025, time.March, 7, 18, 30, 0, 0, time.UTC)}
	assert.Equal(t, "Mar 07, '25", e.DisplayDate())
}

func TestRange(t *testing.T) {
	r := models.Range{Min: 5, Max: 15}
	assert.True(t, r.Contains(5))
	assert.True(t, r.Contains(15))
	assert.False(t, r.Contains(16))
	assert.Equal(t, 11, r.Width())
}

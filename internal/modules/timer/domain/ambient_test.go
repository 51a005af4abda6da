package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRandom replays a fixed float and always picks the first glyph.
type scriptedRandom struct {
	float float64
}

func (s scriptedRandom) Intn(int) int     { return 0 }
func (s scriptedRandom) Float64() float64 { return s.float }

func TestNoneFieldIsEmptyAndStatic(t *testing.T) {
	t.Parallel()
	field := NewAmbientField(AmbientNone, scriptedRandom{float: 0})
	assert.Nil(t, field.Rows())
	field.Animate(scriptedRandom{float: 0})
	assert.Equal(t, " ", field.Cell(0, 0))
}

func TestFieldDensityFollowsRandomSource(t *testing.T) {
	t.Parallel()
	dense := NewAmbientField(AmbientStars, scriptedRandom{float: 0.1})
	rows := dense.Rows()
	require.Len(t, rows, AmbientHeight)
	assert.Equal(t, strings.Repeat(StarGlyphs[0], AmbientWidth), rows[0])

	sparse := NewAmbientField(AmbientRain, scriptedRandom{float: 0.9})
	for _, row := range sparse.Rows() {
		assert.Equal(t, strings.Repeat(" ", AmbientWidth), row)
	}
}

func TestRainFallsOneRowPerStep(t *testing.T) {
	t.Parallel()
	field := NewAmbientField(AmbientRain, scriptedRandom{float: 0.9})
	field.cells[0][3] = RainGlyphs[2]

	field.Animate(scriptedRandom{float: 0.9})
	assert.Equal(t, " ", field.Cell(0, 3))
	assert.Equal(t, RainGlyphs[2], field.Cell(1, 3))

	field.Animate(scriptedRandom{float: 0.05})
	assert.Equal(t, RainGlyphs[2], field.Cell(2, 3))
	assert.Equal(t, RainGlyphs[0], field.Cell(0, 3), "new drops spawn in the top row")
}

func TestStarsTwinkleAndVanish(t *testing.T) {
	t.Parallel()
	field := NewAmbientField(AmbientStars, scriptedRandom{float: 0.9})
	field.cells[4][10] = StarGlyphs[5]

	field.Animate(scriptedRandom{float: 0.2})
	assert.Equal(t, StarGlyphs[0], field.Cell(4, 10), "low roll changes the glyph")

	field.Animate(scriptedRandom{float: 0.99})
	assert.Equal(t, " ", field.Cell(4, 10), "high roll removes the star")
}

package domain

import "strings"

const (
	AmbientWidth  = 60
	AmbientHeight = 8

	ambientDensity    = 0.15
	rainSpawnChance   = 0.10
	starChangeChance  = 0.30
	starSpawnChance   = 0.02
	starVanishChance  = 0.05
	emptyAmbientGlyph = " "
)

var (
	RainGlyphs = []string{"│", "┃", "╽", "╿", "┆", "┇", "┊", "┋"}
	StarGlyphs = []string{"✦", "✧", "⋆", "∗", ".", "·", "✶", "✷", "✸", "★", "☆"}
)

// Random is the randomness the ambient field consumes.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// AmbientField is the decorative background grid. It has no effect on the
// timer.
type AmbientField struct {
	mode  AmbientMode
	cells [][]string
}

// NewAmbientField fills roughly 15% of the grid with glyphs of the given mode.
func NewAmbientField(mode AmbientMode, rnd Random) *AmbientField {
	field := &AmbientField{mode: mode, cells: make([][]string, AmbientHeight)}
	for row := range field.cells {
		field.cells[row] = make([]string, AmbientWidth)
		for col := range field.cells[row] {
			field.cells[row][col] = emptyAmbientGlyph
			if mode == AmbientNone {
				continue
			}
			if rnd.Float64() < ambientDensity {
				field.cells[row][col] = field.glyph(rnd)
			}
		}
	}
	return field
}

// Animate advances the field one step: rain falls a row, stars twinkle.
func (f *AmbientField) Animate(rnd Random) {
	switch f.mode {
	case AmbientRain:
		for col := 0; col < AmbientWidth; col++ {
			for row := AmbientHeight - 1; row > 0; row-- {
				f.cells[row][col] = f.cells[row-1][col]
			}
			if rnd.Float64() < rainSpawnChance {
				f.cells[0][col] = f.glyph(rnd)
			} else {
				f.cells[0][col] = emptyAmbientGlyph
			}
		}
	case AmbientStars:
		for row := range f.cells {
			for col, cell := range f.cells[row] {
				switch {
				case cell != emptyAmbientGlyph:
					roll := rnd.Float64()
					if roll < starChangeChance {
						f.cells[row][col] = f.glyph(rnd)
					} else if roll > 1-starVanishChance {
						f.cells[row][col] = emptyAmbientGlyph
					}
				case rnd.Float64() < starSpawnChance:
					f.cells[row][col] = f.glyph(rnd)
				}
			}
		}
	}
}

// Rows returns the field as strings, one per row. Mode none yields nil.
func (f *AmbientField) Rows() []string {
	if f == nil || f.mode == AmbientNone {
		return nil
	}
	rows := make([]string, len(f.cells))
	for i, row := range f.cells {
		rows[i] = strings.Join(row, "")
	}
	return rows
}

// Cell returns the glyph at row, col.
func (f *AmbientField) Cell(row, col int) string {
	return f.cells[row][col]
}

func (f *AmbientField) glyph(rnd Random) string {
	glyphs := StarGlyphs
	if f.mode == AmbientRain {
		glyphs = RainGlyphs
	}
	return glyphs[rnd.Intn(len(glyphs))]
}

package timer

import (
	"strings"

	"github.com/common-nighthawk/go-figure"
)

const (
	figletFont  = "big"
	glyphHeight = 5
)

// glyphs is a five-row block font covering the characters of a clock. It
// backs BigText when the figlet font cannot render the input.
var glyphs = map[rune][glyphHeight]string{
	'0': {"██████", "██  ██", "██  ██", "██  ██", "██████"},
	'1': {"  ██  ", "████  ", "  ██  ", "  ██  ", "██████"},
	'2': {"██████", "    ██", "██████", "██    ", "██████"},
	'3': {"██████", "    ██", "██████", "    ██", "██████"},
	'4': {"██  ██", "██  ██", "██████", "    ██", "    ██"},
	'5': {"██████", "██    ", "██████", "    ██", "██████"},
	'6': {"██████", "██    ", "██████", "██  ██", "██████"},
	'7': {"██████", "    ██", "   ██ ", "  ██  ", "  ██  "},
	'8': {"██████", "██  ██", "██████", "██  ██", "██████"},
	'9': {"██████", "██  ██", "██████", "    ██", "██████"},
	':': {"  ", "██", "  ", "██", "  "},
}

// BigText renders s in the figlet "big" font, falling back to the block
// font for input the figlet font cannot draw.
func BigText(s string) string {
	if rows, ok := figletRows(s); ok {
		return strings.Join(rows, "\n")
	}
	return blockText(s)
}

// figletRows returns the non-blank rows of s padded to a common width.
// Input outside printable ASCII is left to the block font.
func figletRows(s string) (rows []string, ok bool) {
	if s == "" {
		return nil, false
	}
	for _, r := range s {
		if r < ' ' || r > '~' {
			return nil, false
		}
	}
	defer func() {
		if recover() != nil {
			rows, ok = nil, false
		}
	}()

	width := 0
	for _, row := range figure.NewFigure(s, figletFont, false).Slicify() {
		if strings.TrimSpace(row) == "" {
			continue
		}
		rows = append(rows, row)
		width = max(width, len(row))
	}
	for i, row := range rows {
		rows[i] = row + strings.Repeat(" ", width-len(row))
	}
	return rows, len(rows) > 0
}

// blockText renders s in the block font. Characters without a glyph are
// skipped.
func blockText(s string) string {
	var rows [glyphHeight][]string
	for _, r := range s {
		glyph, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], glyph[i])
		}
	}
	lines := make([]string, glyphHeight)
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}

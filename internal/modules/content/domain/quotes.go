package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "pomo/internal/platform/errors"
)

const quoteSeparator = "---"

// QuoteSet is the content of a custom quotes file.
type QuoteSet struct {
	Work  []string
	Break []string
}

// ParseQuotes reads one quote per line. The first line that is exactly
// "---" ends the work block; a second one ends the break block and anything
// after it is ignored. Blank lines are dropped and quotes are trimmed.
func ParseQuotes(text string) (QuoteSet, error) {
	if !utf8.ValidString(text) {
		return QuoteSet{}, fmt.Errorf("%w: quotes are not valid UTF-8", apperrors.ErrInvalidInput)
	}

	set := QuoteSet{}
	block := 0
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == quoteSeparator {
			block++
			if block > 1 {
				break
			}
			continue
		}
		if line == "" {
			continue
		}
		if block == 0 {
			set.Work = append(set.Work, line)
		} else {
			set.Break = append(set.Break, line)
		}
	}
	return set, nil
}

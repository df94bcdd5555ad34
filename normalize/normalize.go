// Package normalize prepares raw sentences for color derivation: German
// transliteration, visible length, and contiguous letter extraction.
package normalize

import (
	"fmt"
	"strings"
	"unicode"
)

// translit maps German letters onto ASCII sequences
var translit = map[rune]string{
	'ä': "ae",
	'ö': "oe",
	'ü': "ue",
	'Ä': "Ae",
	'Ö': "Oe",
	'Ü': "Ue",
	'ß': "ss",
}

// Analysis is the normalized view of one sentence
type Analysis struct {
	Letters string // lowercase ASCII letters after transliteration, in order
	Visible int    // non-whitespace runes of the raw text
}

// UnsupportedCharError reports a letter outside the supported alphabet
// when strict analysis is requested
type UnsupportedCharError struct {
	Rune   rune
	Offset int // rune index in the raw text
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("unsupported character %q at position %d", e.Rune, e.Offset)
}

// Transliterate expands German letters into their ASCII spellings,
// leaving every other rune untouched
func Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := translit[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// VisibleLen counts the non-whitespace runes of the raw text
func VisibleLen(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// Letters extracts the lowercase ASCII letter sequence after transliteration
func Letters(s string) string {
	a, _ := Analyze(s, false)
	return a.Letters
}

// Analyze performs the full normalization pass in one scan. In strict mode
// a letter that is neither ASCII nor transliterable aborts the analysis;
// otherwise such runes are silently dropped. Non-letter runes never error.
func Analyze(text string, strict bool) (Analysis, error) {
	var letters strings.Builder
	letters.Grow(len(text))

	visible := 0
	pos := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			visible++
		}
		switch {
		case r >= 'a' && r <= 'z':
			letters.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			letters.WriteRune(r + ('a' - 'A'))
		default:
			if repl, ok := translit[r]; ok {
				letters.WriteString(strings.ToLower(repl))
			} else if strict && unicode.IsLetter(r) {
				return Analysis{}, &UnsupportedCharError{Rune: r, Offset: pos}
			}
		}
		pos++
	}

	return Analysis{Letters: letters.String(), Visible: visible}, nil
}

package speech

import (
	"fmt"
	"strings"

	"github.com/dcazrael/color-sentence/core"
)

// Utterance builds the sentence the narrator speaks for one result.
// German phrasing with typographic quotes for de-* locales, English
// otherwise.
func Utterance(original string, res core.Result, o Options) string {
	german := strings.HasPrefix(strings.ToLower(o.Locale), "de")

	if o.IncludeHex {
		if german {
			return fmt.Sprintf("Der Satz „%s“ hat die Farbe %s (%s).", original, res.Name, res.Color.Hex())
		}
		return fmt.Sprintf("The sentence \"%s\" has the color %s (%s).", original, res.Name, res.Color.Hex())
	}
	if german {
		return fmt.Sprintf("Der Satz „%s“ hat die Farbe %s.", original, res.Name)
	}
	return fmt.Sprintf("The sentence \"%s\" has the color %s.", original, res.Name)
}

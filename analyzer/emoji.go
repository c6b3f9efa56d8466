package analyzer

import (
	"unicode"

	"github.com/jaliph/chatlens/models"
)

// emojiTable is the fixed detection table: the Unicode blocks that
// cover the emoji seen in chat exports. Variation selectors, skin-tone
// modifiers and zero-width joiners are deliberately not counted, so a
// composed emoji contributes its base code points.
var emojiTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // miscellaneous symbols
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // dingbats
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1}, // arrows
		{Lo: 0x2B50, Hi: 0x2B50, Stride: 1}, // star
		{Lo: 0x2B55, Hi: 0x2B55, Stride: 1}, // heavy circle
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // regional indicators
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental pictographs
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // extended-A
	},
}

// IsEmoji reports whether the rune is in the emoji detection table.
func IsEmoji(r rune) bool {
	return unicode.Is(emojiTable, r)
}

// EmojiFrequency scans every body for emoji code points and returns the
// counts, descending, ties broken by first occurrence.
func EmojiFrequency(records []models.MessageRecord, topN int) []models.LabelCount {
	c := newCounter()
	for _, r := range records {
		for _, ch := range r.Body {
			if IsEmoji(ch) {
				c.add(string(ch), 1)
			}
		}
	}
	return c.top(topN)
}

// internal/presentation/tricolor.go
package presentation

import (
	"unicode/utf8"

	"github.com/codr1/qlick/internal/models"
)

// TricolorThemeName is the one theme whose labels are drawn in the flag
// colors.
const TricolorThemeName = "Independence"

var TricolorColors = [3]string{"#FF9933", "#FFFFFF", "#138808"}

// Segment is a run of text drawn in a single color.
type Segment struct {
	Text  string
	Color string
}

// SplitTricolor cuts label into three contiguous pieces of ceil(n/3),
// ceil(2n/3)-ceil(n/3) and the remaining runes. Pieces may be empty and
// always concatenate back to label byte for byte, even when label is not
// valid UTF-8.
func SplitTricolor(label string) [3]string {
	n := utf8.RuneCountInString(label)
	first := runeOffset(label, ceilDiv(n, 3))
	second := runeOffset(label, ceilDiv(2*n, 3))
	return [3]string{label[:first], label[first:second], label[second:]}
}

// runeOffset returns the byte offset of the count'th rune in s. Invalid
// bytes count as one rune each, matching utf8.RuneCountInString.
func runeOffset(s string, count int) int {
	offset := 0
	for i := 0; i < count && offset < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return offset
}

// TextSegments returns the colored runs for label under cfg. Only the
// tricolor theme splits the label; everything else is one run in the theme
// text color.
func TextSegments(cfg *models.ThemeConfig, label string) []Segment {
	if cfg == nil || cfg.Name != TricolorThemeName {
		color := ""
		if cfg != nil {
			color = cfg.Text
		}
		return []Segment{{Text: label, Color: color}}
	}
	parts := SplitTricolor(label)
	segments := make([]Segment, 0, len(parts))
	for i, part := range parts {
		segments = append(segments, Segment{Text: part, Color: TricolorColors[i]})
	}
	return segments
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

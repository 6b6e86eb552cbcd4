package chat

import "strings"

const (
	formatMarker = '§'

	Green = "§a"
	Aqua  = "§b"
	Red   = "§c"
)

// Segment is a run of text sharing one formatting code. Code is 0 for
// text before any code.
type Segment struct {
	Code rune
	Text string
}

// ParseFormatting splits text on § codes. A trailing lone § is kept as text.
func ParseFormatting(text string) []Segment {
	var segments []Segment
	var current strings.Builder
	var code rune

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == formatMarker && i+1 < len(runes) {
			if current.Len() > 0 {
				segments = append(segments, Segment{Code: code, Text: current.String()})
				current.Reset()
			}
			code = runes[i+1]
			i++
			continue
		}
		current.WriteRune(runes[i])
	}
	if current.Len() > 0 {
		segments = append(segments, Segment{Code: code, Text: current.String()})
	}
	return segments
}

// StripFormatting removes all § codes from text.
func StripFormatting(text string) string {
	var b strings.Builder
	for _, segment := range ParseFormatting(text) {
		b.WriteString(segment.Text)
	}
	return b.String()
}

package ui

import (
	"strings"
	"unicode"

	"github.com/bz888/tavish/internal/chat"
	"github.com/rivo/tview"
)

var formatColors = map[rune]string{
	'0': "black",
	'2': "darkgreen",
	'4': "darkred",
	'6': "gold",
	'7': "gray",
	'8': "darkgray",
	'9': "blue",
	'a': "green",
	'b': "aqua",
	'c': "red",
	'd': "fuchsia",
	'e': "yellow",
	'f': "white",
}

// renderFormatting turns § codes into tview color tags and escapes the rest.
func renderFormatting(text string) string {
	var b strings.Builder
	colored := false
	for _, segment := range chat.ParseFormatting(text) {
		if color, ok := formatColors[unicode.ToLower(segment.Code)]; ok {
			b.WriteString("[" + color + "]")
			colored = true
		} else if segment.Code != 0 && colored {
			b.WriteString("[-]")
			colored = false
		}
		b.WriteString(tview.Escape(segment.Text))
	}
	if colored {
		b.WriteString("[-]")
	}
	return b.String()
}

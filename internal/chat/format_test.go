package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormatting(t *testing.T) {
	assert.Equal(t, []Segment{{Code: 'a', Text: "Executed: /time set day"}},
		ParseFormatting("§aExecuted: /time set day"))

	assert.Equal(t, []Segment{
		{Code: 0, Text: "plain "},
		{Code: 'c', Text: "red"},
		{Code: 'r', Text: " back"},
	}, ParseFormatting("plain §cred§r back"))

	assert.Equal(t, []Segment{{Code: 0, Text: "cost 5§"}}, ParseFormatting("cost 5§"))
	assert.Empty(t, ParseFormatting("§b"))
}

func TestStripFormatting(t *testing.T) {
	assert.Equal(t, "AI: hello", StripFormatting("§bAI: hello"))
	assert.Equal(t, "no codes", StripFormatting("no codes"))
}

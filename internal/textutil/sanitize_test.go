package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTerminalTextLeavesSafeInput(t *testing.T) {
	input := "safe-file.txt"
	assert.Equal(t, input, SanitizeTerminalText(input))
}

func TestSanitizeTerminalTextReplacesControlSequences(t *testing.T) {
	assert.Equal(t, "bad?[31m path", SanitizeTerminalText("bad\x1b[31m\npath"))
	assert.Equal(t, "a?b", SanitizeTerminalText("a\x7fb"))
	assert.Equal(t, "c1?", SanitizeTerminalText("c1\u009b"))
}

func TestSanitizeTerminalTextReplacesFormattingRunes(t *testing.T) {
	input := "a\u202eb\u200bc"
	assert.Equal(t, "a\ufffdb\ufffdc", SanitizeTerminalText(input))
}

func TestDisplayNameComposesAccents(t *testing.T) {
	decomposed := "cafe\u0301"
	assert.Equal(t, "caf\u00e9", DisplayName(decomposed))
	assert.Equal(t, "tab name", DisplayName("tab\tname"))
}

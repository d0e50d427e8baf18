package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordcheck/pkg/speller"
	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func runHandler(t *testing.T, noFilter bool, input string) (*InputHandler, string) {
	t.Helper()
	s := speller.New(trie.New())
	for _, w := range []string{"to", "too", "test", "tea", "team"} {
		s.AddWord(w)
	}
	h := NewInputHandler(s, 12, 2, noFilter)
	var out bytes.Buffer
	h.SetIO(strings.NewReader(input), &out)
	require.NoError(t, h.Start())
	return h, out.String()
}

func TestInputHandlerChecks(t *testing.T) {
	h, out := runHandler(t, false, "test\nTost\n\nxyz\n")

	assert.Equal(t, 3, h.Requests())
	assert.Contains(t, out, "test: ok")
	assert.Contains(t, out, "Tost -> Test")
	assert.Contains(t, out, "xyz: NO SUGGESTION")
}

func TestInputHandlerAppend(t *testing.T) {
	_, out := runHandler(t, false, "t\n+o\n+oo\n")

	assert.Contains(t, out, "t: NO SUGGESTION")
	assert.Contains(t, out, "to: ok")
	assert.Contains(t, out, "tooo -> too")
}

func TestInputHandlerAppendWithoutWord(t *testing.T) {
	_, out := runHandler(t, false, "+oo\n")
	assert.NotContains(t, out, "oo:")
}

func TestInputHandlerComplete(t *testing.T) {
	_, out := runHandler(t, false, "?te\n")

	assert.Contains(t, out, "Found 2 completions for 'te':")
	assert.Contains(t, out, " 1. tea")
	assert.Contains(t, out, " 2. team")
	assert.NotContains(t, out, "test")
}

func TestInputHandlerFiltering(t *testing.T) {
	_, out := runHandler(t, false, "1234\nte$t\nabcdefghijklmn\n")
	assert.NotContains(t, out, "NO SUGGESTION")

	_, out = runHandler(t, true, "te$t\n")
	assert.Contains(t, out, "te$t: NO SUGGESTION")
}

func TestInputHandlerPromptStaysOnLine(t *testing.T) {
	_, out := runHandler(t, false, "test\n")

	assert.Contains(t, out, "> test: ok\n", "result follows the prompt on the same line")
	assert.True(t, strings.HasSuffix(out, "> "), "final prompt waits without a newline")
	assert.NotContains(t, out, ">\n")
}

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const hintedDoc = `# Warmup

Read the prompt carefully.

## Hint - Decoding

The payload is base64.

## Hint - Ordering

Sort before you compare.
`

func TestCountHints(t *testing.T) {
	blocks := Parse(hintedDoc)
	assert.Equal(t, 2, CountHints(blocks))
}

func TestRenderCollapsedHidesBody(t *testing.T) {
	blocks := Parse(hintedDoc)
	out := NewRenderer(200).Render(blocks)

	assert.Contains(t, out, "Warmup")
	assert.Contains(t, out, "Decoding")
	assert.NotContains(t, out, "base64")
	assert.NotContains(t, out, "compare")
}

func TestRenderExpandedShowsBody(t *testing.T) {
	blocks := Parse(hintedDoc)
	r := NewRenderer(200)
	r.Expanded[1] = true
	out := r.Render(blocks)

	assert.NotContains(t, out, "base64")
	assert.Contains(t, out, "compare")
}

func TestRenderListAndCode(t *testing.T) {
	blocks := Parse("- alpha\n- beta\n\n```sh\nls -la\n```\n")
	out := NewRenderer(200).Render(blocks)

	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "ls -la")
}

func TestRenderMarkers(t *testing.T) {
	blocks := Parse(hintedDoc)

	collapsed := NewRenderer(200).Render(blocks)
	assert.Equal(t, 2, strings.Count(collapsed, "▸ Hint"))

	r := NewRenderer(200)
	r.Expanded[0] = true
	open := r.Render(blocks)
	assert.Equal(t, 1, strings.Count(open, "▾ Hint"))
	assert.Equal(t, 1, strings.Count(open, "▸ Hint"))
}

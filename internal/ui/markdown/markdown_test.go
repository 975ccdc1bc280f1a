package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicBlocks(t *testing.T) {
	src := `# Title

Some intro with ` + "`code`" + ` inline.

- first
- second

` + "```go\nfmt.Println(\"hi\")\n```" + `
`
	blocks := Parse(src)
	require.Len(t, blocks, 5)

	assert.Equal(t, Heading{Level: 1, Text: "Title"}, blocks[0])
	assert.Equal(t, Paragraph{Text: "Some intro with `code` inline."}, blocks[1])
	assert.Equal(t, ListItem{Text: "first"}, blocks[2])
	assert.Equal(t, ListItem{Text: "second"}, blocks[3])
	assert.Equal(t, CodeBlock{Language: "go", Code: `fmt.Println("hi")`}, blocks[4])
}

func TestParseHintFoldsUntilNextHeading(t *testing.T) {
	src := `# Lesson

## Hint - Try a map

Use a hash map.

` + "```python\nd = {}\n```" + `

## Next steps

Carry on.
`
	blocks := Parse(src)
	require.Len(t, blocks, 4)

	assert.Equal(t, Heading{Level: 1, Text: "Lesson"}, blocks[0])

	hint, ok := blocks[1].(Hint)
	require.True(t, ok, "second block should be the hint")
	assert.Equal(t, "Try a map", hint.Title)
	require.Len(t, hint.Body, 2)
	assert.Equal(t, Paragraph{Text: "Use a hash map."}, hint.Body[0])
	assert.Equal(t, CodeBlock{Language: "python", Code: "d = {}"}, hint.Body[1])

	assert.Equal(t, Heading{Level: 2, Text: "Next steps"}, blocks[2])
	assert.Equal(t, Paragraph{Text: "Carry on."}, blocks[3])
}

func TestParseAdjacentHints(t *testing.T) {
	src := `## Hint - One

first hint body

## Hint - Two

second hint body
`
	blocks := Parse(src)
	require.Len(t, blocks, 2)
	h1 := blocks[0].(Hint)
	h2 := blocks[1].(Hint)
	assert.Equal(t, "One", h1.Title)
	assert.Equal(t, "Two", h2.Title)
	require.Len(t, h2.Body, 1)
	assert.Equal(t, Paragraph{Text: "second hint body"}, h2.Body[0])
}

func TestParseHintAtEndOfDocument(t *testing.T) {
	src := "## Hint - Last\n\ntrailing body\n"
	blocks := Parse(src)
	require.Len(t, blocks, 1)
	h := blocks[0].(Hint)
	assert.Equal(t, "Last", h.Title)
	require.Len(t, h.Body, 1)
}

func TestParseH3HintPrefixIsNotAHint(t *testing.T) {
	src := "### Hint - Not really\n\nbody\n"
	blocks := Parse(src)
	require.Len(t, blocks, 2)
	assert.Equal(t, Heading{Level: 3, Text: "Hint - Not really"}, blocks[0])
}

func TestParseSoftBreaksBecomeSpaces(t *testing.T) {
	src := "line one\nline two\n"
	blocks := Parse(src)
	require.Len(t, blocks, 1)
	assert.Equal(t, Paragraph{Text: "line one line two"}, blocks[0])
}

func TestParseBlockquoteContentSurfaces(t *testing.T) {
	src := "> quoted advice\n"
	blocks := Parse(src)
	require.Len(t, blocks, 1)
	assert.Equal(t, Paragraph{Text: "quoted advice"}, blocks[0])
}

func TestParseNestedListsFlatten(t *testing.T) {
	src := "- outer\n  - inner\n"
	blocks := Parse(src)
	require.Len(t, blocks, 2)
	assert.Equal(t, ListItem{Text: "outer"}, blocks[0])
	assert.Equal(t, ListItem{Text: "inner"}, blocks[1])
}

package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/kitejava/kite/parser"
)

func parseWithComments(t *testing.T, src string) (*parser.Node, []parser.Token) {
	t.Helper()
	p := parser.ParseExpression(strings.NewReader(src), parser.WithFile("E.kite"), parser.WithComments())
	root, err := p.Finish()
	require.NoError(t, err)
	require.Empty(t, p.Errors())
	return root, p.Comments()
}

func TestCSTJSONEncoder(t *testing.T) {
	root, comments := parseWithComments(t, "a + /* one */ 1")

	var buf bytes.Buffer
	require.NoError(t, NewCSTJSONEncoder(&buf).Encode(root, comments))

	var doc cstJSONDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "E.kite", doc.File)
	assert.Equal(t, "Binary", doc.Root.Kind)
	require.Len(t, doc.Root.Children, 3)

	first := doc.Root.Children[0]
	require.NotNil(t, first.Token)
	assert.Equal(t, "Identifier", first.Token.Kind)
	assert.Equal(t, "a", first.Token.Text)
	require.NotNil(t, first.Span)
	assert.Equal(t, cstJSONPosition{Line: 1, Column: 0}, first.Span.Start)

	op := doc.Root.Children[1]
	require.NotNil(t, op.Token)
	assert.Equal(t, "+", op.Token.Text)

	require.Len(t, doc.Comments, 1)
	assert.Equal(t, "BlockComment", doc.Comments[0].Kind)
	assert.Equal(t, "/* one */", doc.Comments[0].Text)
	assert.Equal(t, cstJSONPosition{Line: 1, Column: 4}, doc.Comments[0].Span.Start)
}

func TestCSTJSONEncoderRecordsErrors(t *testing.T) {
	p := parser.ParseExpression(strings.NewReader("a +"), parser.WithFile("E.kite"))
	root, err := p.Finish()
	require.NoError(t, err)
	require.NotEmpty(t, p.Errors())

	text, err := NewCSTJSONEncoder(nil).MarshalText(root, nil)
	require.NoError(t, err)
	assert.Contains(t, string(text), `"error": {`)
	assert.NotContains(t, string(text), `"comments"`)
}

func TestLineEncoderListsComments(t *testing.T) {
	root, comments := parseWithComments(t, "a // tail")

	var buf bytes.Buffer
	require.NoError(t, NewLineEncoder(&buf).EncodeCST(root, comments))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, "LineComment\t1:2\t\"// tail\"", lines[len(lines)-1])
}

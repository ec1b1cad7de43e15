package page

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<!doctype html>
<html><head><title>t</title></head>
<body>
<p>Short.</p>
<p id="lead">  The quick   brown fox
jumps over the lazy dog.</p>
</body></html>`

func TestDocument_SetTextUpsertsSingleElement(t *testing.T) {
	ctx := context.Background()
	doc, err := ParseDocument(strings.NewReader(sampleHTML))
	require.NoError(t, err)

	text, err := doc.Text(ctx)
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, doc.SetText(ctx, ":root { --includs-font-scale: 1.2; }"))
	require.NoError(t, doc.SetText(ctx, ":root { --includs-font-scale: 1.3; }"))

	var out bytes.Buffer
	require.NoError(t, doc.Render(&out))
	html := out.String()

	assert.Equal(t, 1, strings.Count(html, `id="includs-typography-styles"`))
	assert.Contains(t, html, `data-includs="true"`)
	assert.Contains(t, html, "--includs-font-scale: 1.3;")
	assert.NotContains(t, html, "1.2;")

	text, _ = doc.Text(ctx)
	assert.Equal(t, ":root { --includs-font-scale: 1.3; }", text)
}

func TestDocument_SetTextCollapsesDuplicates(t *testing.T) {
	ctx := context.Background()
	src := `<html><head>
<style id="includs-typography-styles">a</style>
<style id="includs-typography-styles">b</style>
</head><body></body></html>`

	doc, err := ParseDocument(strings.NewReader(src))
	require.NoError(t, err)
	require.NoError(t, doc.SetText(ctx, ""))

	var out bytes.Buffer
	require.NoError(t, doc.Render(&out))
	assert.Equal(t, 1, strings.Count(out.String(), "includs-typography-styles"))
}

func TestDocument_ParagraphExtraction(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(sampleHTML))
	require.NoError(t, err)

	assert.Equal(t, "The quick brown fox jumps over the lazy dog.", doc.BlockText("#lead"))
	assert.Equal(t, "", doc.BlockText("#missing"))
	assert.Equal(t, "The quick brown fox jumps over the lazy dog.", doc.FirstParagraph(10))
}

func TestMemoryStyleSheet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStyleSheet()
	require.NoError(t, m.SetText(ctx, "x"))

	text, err := m.Text(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", text)
	assert.Equal(t, 1, m.Writes())
}

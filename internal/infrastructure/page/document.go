package page

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const styleSelector = "style#" + StyleElementID

// Document is a parsed HTML page whose managed style element can be read
// and rewritten before the page is rendered back out.
type Document struct {
	doc *goquery.Document
}

// ParseDocument reads an HTML document.
func ParseDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

func (d *Document) Text(context.Context) (string, error) {
	return d.doc.Find(styleSelector).First().Text(), nil
}

// SetText upserts the single managed style element at the end of <head>.
// Duplicate managed elements left by other tools are removed.
func (d *Document) SetText(_ context.Context, css string) error {
	existing := d.doc.Find(styleSelector)
	if existing.Length() > 1 {
		existing.Slice(1, existing.Length()).Remove()
		existing = existing.First()
	}

	if existing.Length() == 0 {
		head := d.doc.Find("head").First()
		if head.Length() == 0 {
			return fmt.Errorf("document has no head element")
		}
		head.AppendHtml(fmt.Sprintf(`<style id="%s" data-includs="true"></style>`, StyleElementID))
		existing = head.Find(styleSelector).First()
	}

	existing.SetText(css)
	return nil
}

// Render writes the document back out as HTML.
func (d *Document) Render(w io.Writer) error {
	html, err := goquery.OuterHtml(d.doc.Selection)
	if err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	if _, err := io.WriteString(w, html); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	return nil
}

// BlockText returns the normalized text of the first element matching
// selector, or "" when nothing matches. Whitespace runs collapse to one space.
func (d *Document) BlockText(selector string) string {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// FirstParagraph returns the first paragraph long enough to explain, the
// fallback used when no selector is given.
func (d *Document) FirstParagraph(minChars int) string {
	var found string
	d.doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if len([]rune(text)) >= minChars {
			found = text
			return false
		}
		return true
	})
	return found
}

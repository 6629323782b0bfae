package markdown

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// newEngine builds a GFM goldmark instance whose generated heading ids
// match the anchors used in the table of contents.
func newEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// ToHTML converts a generated document to an HTML fragment.
func ToHTML(doc string) ([]byte, error) {
	var buf bytes.Buffer
	if err := newEngine().Convert([]byte(doc), &buf); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return buf.Bytes(), nil
}

// HTMLDocument wraps [ToHTML] output in a standalone UTF-8 page.
func HTMLDocument(title, doc string) ([]byte, error) {
	body, err := ToHTML(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(title))
	buf.WriteString("</head>\n<body>\n")
	buf.Write(body)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

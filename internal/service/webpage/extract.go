package webpage

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	domainservice "SentimentScope/internal/domain/service"
)

// ExtractText returns the visible text of an HTML document: the text of
// every <p> element when there is any, the readable article text otherwise.
func ExtractText(raw []byte, pageURL *url.URL) (string, error) {
	text, err := ExtractParagraphs(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	if text != "" {
		return text, nil
	}

	article, err := readability.FromReader(bytes.NewReader(raw), pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainservice.ErrNoContent, err)
	}
	text = strings.Join(strings.Fields(article.TextContent), " ")
	if text == "" {
		return "", domainservice.ErrNoContent
	}
	return text, nil
}

// ExtractParagraphs joins the text of all <p> elements with single spaces.
func ExtractParagraphs(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.P {
			if t := nodeText(n); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, " "), nil
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
		case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Package textproc turns raw user input into the plain lowercase text the
// lexicons score, and derives simple statistics from it.
package textproc

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/russross/blackfriday/v2"
)

var (
	urlPattern    = regexp.MustCompile(`(?i)(https?://|www\.)\S+`)
	scriptPattern = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(script|style)>`)
	tagPattern    = regexp.MustCompile(`<[^>]*>`)

	markdownRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
)

// Normalize strips URLs, Markdown and HTML markup and every character that is
// not a letter, lowercases what remains and collapses whitespace.
// Empty input yields empty output.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	s := urlPattern.ReplaceAllString(raw, " ")
	s = string(blackfriday.Run([]byte(s),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
		blackfriday.WithRenderer(markdownRenderer),
	))
	s = scriptPattern.ReplaceAllString(s, " ")
	s = tagPattern.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

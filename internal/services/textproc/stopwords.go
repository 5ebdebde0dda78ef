package textproc

import (
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var stopwordList string

// English stop words. Contractions are kept in both the apostrophe and the
// stripped form since normalized text has no punctuation left.
var stopwords = func() map[string]struct{} {
	m := make(map[string]struct{}, 256)
	for _, w := range strings.Fields(stopwordList) {
		m[w] = struct{}{}
		m[strings.ReplaceAll(w, "'", "")] = struct{}{}
	}
	return m
}()

// IsStopword reports whether w is an English stop word. w must be lowercase.
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}

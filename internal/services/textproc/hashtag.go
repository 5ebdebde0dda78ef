package textproc

import (
	"strings"
	"unicode"
)

// SplitHashtag breaks a hashtag into lowercase words. One leading '#' is
// dropped, underscores separate words, camel case and acronyms are split and
// digit runs become their own words:
//
//	ILoveThis      -> [i love this]
//	a_b_c          -> [a b c]
//	NASALaunch2024 -> [nasa launch 2024]
func SplitHashtag(tag string) []string {
	tag = strings.TrimPrefix(tag, "#")

	var words []string
	for _, part := range strings.Split(tag, "_") {
		words = append(words, splitCamel([]rune(part))...)
	}
	return words
}

// HashtagText returns the words of a hashtag joined by single spaces.
func HashtagText(tag string) string {
	return strings.Join(SplitHashtag(tag), " ")
}

func splitCamel(rs []rune) []string {
	var out []string
	emit := func(w []rune) {
		if len(w) > 0 {
			out = append(out, strings.ToLower(string(w)))
		}
	}

	for i := 0; i < len(rs); {
		start := i
		switch r := rs[i]; {
		case unicode.IsDigit(r):
			for i < len(rs) && unicode.IsDigit(rs[i]) {
				i++
			}
			emit(rs[start:i])
		case unicode.IsUpper(r):
			for i < len(rs) && unicode.IsUpper(rs[i]) {
				i++
			}
			if i < len(rs) && unicode.IsLower(rs[i]) {
				// the last capital opens the next word
				emit(rs[start : i-1])
				start = i - 1
				for i < len(rs) && unicode.IsLower(rs[i]) {
					i++
				}
			}
			emit(rs[start:i])
		case unicode.IsLower(r):
			for i < len(rs) && unicode.IsLower(rs[i]) {
				i++
			}
			emit(rs[start:i])
		default:
			i++
		}
	}
	return out
}

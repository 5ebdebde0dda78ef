package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"SentimentScope/internal/domain/models"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", "  \n\t ", ""},
		{"plain", "I LOVE this!!!", "i love this"},
		{"html", "<p>Great <b>product</b></p><script>var x = 1;</script>", "great product"},
		{"markdown", "# Title\n\nSome **bold** and _italic_ text.", "title some bold and italic text"},
		{"urls", "see https://example.com/a?b=c and www.test.org now", "see and now"},
		{"digits and punctuation", "Top 10 picks: wow, 2024!", "top picks wow"},
		{"entities", "fish &amp; chips", "fish chips"},
		{"whitespace", "a\n\n\nb   c", "a b c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestSplitHashtag(t *testing.T) {
	cases := map[string][]string{
		"ILoveThis":      {"i", "love", "this"},
		"#ILoveThis":     {"i", "love", "this"},
		"a_b_c":          {"a", "b", "c"},
		"NASALaunch2024": {"nasa", "launch", "2024"},
		"happy_Monday":   {"happy", "monday"},
		"golang":         {"golang"},
		"USA":            {"usa"},
		"___":            nil,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, SplitHashtag(in))
		})
	}
}

func TestHashtagTextStripsOnlyOneHash(t *testing.T) {
	assert.Equal(t, "i love this", HashtagText("ILoveThis"))
	assert.Equal(t, "go", HashtagText("##go"))
}

func TestWordFrequency(t *testing.T) {
	text := "the cat sat on the mat cat dog mat cat an ox"

	got := WordFrequency(text, 10, 3)

	assert.Equal(t, []models.WordCount{
		{Word: "cat", Count: 3},
		{Word: "mat", Count: 2},
		{Word: "sat", Count: 1},
		{Word: "dog", Count: 1},
	}, got)
}

func TestWordFrequencyTopNAndTies(t *testing.T) {
	got := WordFrequency("zeta alpha beta alpha zeta gamma", 2, 3)

	assert.Equal(t, []models.WordCount{
		{Word: "zeta", Count: 2},
		{Word: "alpha", Count: 2},
	}, got)
}

func TestWordFrequencyDropsStopwordsWithoutApostrophes(t *testing.T) {
	got := WordFrequency(Normalize("Don't you've shouldn't really"), 10, 3)

	assert.Equal(t, []models.WordCount{{Word: "really", Count: 1}}, got)
}

func TestWordFrequencyEmpty(t *testing.T) {
	assert.Empty(t, WordFrequency("", 10, 3))
}

package models

// Label is the direction of a sentiment score.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// CompoundSignal is the output of a valence-aware lexicon.
// Positive, Neutral and Negative sum to 1.
type CompoundSignal struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"pos"`
	Neutral  float64 `json:"neu"`
	Negative float64 `json:"neg"`
}

// PolaritySignal is the output of a polarity/subjectivity lexicon.
type PolaritySignal struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// BlendedSentiment combines both oracle outputs into one score.
type BlendedSentiment struct {
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Compound   CompoundSignal `json:"-"`
	Polarity   PolaritySignal `json:"-"`
}

// TimelinePoint is one simulated hour of hashtag activity.
type TimelinePoint struct {
	Time      string  `json:"time"`
	Sentiment float64 `json:"sentiment"`
	Volume    int     `json:"volume"`
}

// HashtagAnalysis is the aggregated result of a simulated timeline.
type HashtagAnalysis struct {
	Label      Label           `json:"sentiment"`
	Score      float64         `json:"score"`
	Confidence float64         `json:"confidence"`
	Timeline   []TimelinePoint `json:"timeline"`
}

// WordCount is a single row of a word frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TextAnalysis is the result of scoring a piece of free text.
type TextAnalysis struct {
	Label     Label
	Sentiment BlendedSentiment
}

// PageAnalysis is the result of scoring the visible text of a web page.
type PageAnalysis struct {
	TextAnalysis
	WordFrequency []WordCount
}

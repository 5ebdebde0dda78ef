package models

// Requests and responses for the analysis HTTP endpoints.

type TextRequest struct {
	Text string `json:"text" validate:"notblank"`
}

type URLRequest struct {
	URL string `json:"url" validate:"required,httpurl"`
}

type HashtagRequest struct {
	Hashtag string `json:"hashtag" validate:"required,hashtag"`
}

// SignalDetails exposes the raw oracle signals behind a score.
type SignalDetails struct {
	Compound     float64 `json:"compound"`
	Positive     float64 `json:"pos"`
	Neutral      float64 `json:"neu"`
	Negative     float64 `json:"neg"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type TextResponse struct {
	Sentiment  Label          `json:"sentiment"`
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Details    *SignalDetails `json:"details,omitempty"`
}

type URLResponse struct {
	TextResponse
	WordFrequency []WordCount `json:"wordFrequency"`
}

type HashtagResponse = HashtagAnalysis

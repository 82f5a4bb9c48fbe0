package model

// AnalyzeRequest is the payload for the text-analysis endpoint.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResult reports the outcome of a vowel scan. TotalTime is the
// measured scan duration formatted as "<ms>ms".
type AnalyzeResult struct {
	Text      string `json:"text"`
	Vowel     string `json:"vowel"`
	TotalTime string `json:"totalTime"`
}

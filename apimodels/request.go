package apimodels

type AnalysisRequest struct {
	// Text is the user's free-form description of their situation
	Text string `json:"text"`
}

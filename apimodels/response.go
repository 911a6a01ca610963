package apimodels

// EmotionScores holds the five fixed emotional dimensions, each scored 0-10.
type EmotionScores struct {
	Stress      int `json:"Stress"`
	Clarity     int `json:"Clarity"`
	Frustration int `json:"Frustration"`
	Hope        int `json:"Hope"`
	Anxiety     int `json:"Anxiety"`
}

// Axes returns the category labels in their fixed display order.
func (e EmotionScores) Axes() []string {
	return []string{"Stress", "Clarity", "Frustration", "Hope", "Anxiety"}
}

// Values returns the scores in the same order as Axes.
func (e EmotionScores) Values() []int {
	return []int{e.Stress, e.Clarity, e.Frustration, e.Hope, e.Anxiety}
}

// Clamp forces every score into the declared 0-10 range. The model is asked
// for that range but nothing guarantees it honors it.
func (e *EmotionScores) Clamp() {
	for _, v := range []*int{&e.Stress, &e.Clarity, &e.Frustration, &e.Hope, &e.Anxiety} {
		if *v < 0 {
			*v = 0
		}
		if *v > 10 {
			*v = 10
		}
	}
}

// PerspectiveSet is the three reframings of the user's situation.
type PerspectiveSet struct {
	Stoic         string `json:"stoic"`
	Strategist    string `json:"strategist"`
	Compassionate string `json:"compassionate"`
}

type AnalysisResponse struct {
	Emotions     EmotionScores  `json:"emotions"`
	Perspectives PerspectiveSet `json:"perspectives"`

	// The one-line closing thought
	Takeaway string `json:"one_line_takeaway"`

	// Ready-to-render radar figure for the emotions
	Chart interface{} `json:"chart,omitempty"`

	// Metadata about the analysis
	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	// Time taken for analysis
	Duration string `json:"duration"`

	// Model used for analysis
	Model string `json:"model"`
}

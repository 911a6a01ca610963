package analyzer

import "fmt"

// analysisPrompt asks for the exact JSON shape the decoder expects. The format
// lives in the prompt because older models reject strict JSON response
// enforcement via generation config.
const analysisPrompt = `You are an emotional intelligence expert. Analyze the following situation:
"%s"

Return a STRICT JSON object (no other text) with this exact structure.
Do not use markdown formatting. Do not use newlines inside string values.
{
    "emotions": {
        "Stress": (integer 0-10),
        "Clarity": (integer 0-10),
        "Frustration": (integer 0-10),
        "Hope": (integer 0-10),
        "Anxiety": (integer 0-10)
    },
    "perspectives": {
        "stoic": "Short summary focusing on control.",
        "strategist": "Short bullet-point plan.",
        "compassionate": "Warm, validating response."
    },
    "one_line_takeaway": "Short philosophical quote."
}`

func buildPrompt(text string) string {
	return fmt.Sprintf(analysisPrompt, text)
}

package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// RateLimitError marks quota or throttling rejections from the provider.
// Callers surface these differently from other failures because the fix is
// simply waiting and retrying.
type RateLimitError struct {
	StatusCode int
	Message    string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("gemini rate limited (status %d): %s", e.StatusCode, e.Message)
}

// IsRateLimit checks whether err wraps a rate-limit rejection.
func IsRateLimit(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// isRateLimitResponse checks an HTTP error response for the rate-limit class.
// The API uses 429, but quota exhaustion also shows up as RESOURCE_EXHAUSTED
// in error bodies on other status codes.
func isRateLimitResponse(statusCode int, body []byte) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}

	bodyStr := strings.ToLower(string(body))
	indicators := []string{
		"resource_exhausted",
		"quota exceeded",
		"rate limit",
	}
	for _, indicator := range indicators {
		if strings.Contains(bodyStr, indicator) {
			return true
		}
	}

	return false
}

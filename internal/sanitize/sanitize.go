// Package sanitize cleans raw model output into parseable JSON text.
package sanitize

import (
	"regexp"
	"strings"
)

// fence matches markdown code fences such as ```json or a bare closing ```
var fence = regexp.MustCompile("```[a-zA-Z]*\n?")

// Clean strips code fences and flattens raw newlines so the blob can be fed
// to a JSON decoder. Models wrap structured output in markdown and sometimes
// emit literal newlines inside string values, which strict JSON rejects.
// Clean never fails and is a no-op on already-clean input.
func Clean(s string) string {
	s = fence.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(s)
}

package validate

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Clean strips markup and surrounding whitespace from user supplied text.
func Clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}

func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

package dabom

import (
	"log/slog"
	"regexp"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var htmlTagPattern = regexp.MustCompile(`(?i)<(p|div|span|a|b|strong|em|i|u|ul|ol|li|br|hr|h[1-6]|table|tr|td|th|code|pre|blockquote)(\s[^>]*)?/?>`)

func looksLikeHTML(content string) bool {
	return htmlTagPattern.MatchString(content)
}

// markdownContent returns a copy of results with HTML content converted to
// Markdown. Content that fails to convert is kept as is.
func markdownContent(results []CleanedResult) []CleanedResult {
	converted := make([]CleanedResult, len(results))
	for i, r := range results {
		converted[i] = r
		if !looksLikeHTML(r.Content) {
			continue
		}

		markdown, err := htmltomarkdown.ConvertString(r.Content)
		if err != nil {
			slog.Debug("keeping HTML content", "url", r.URL, "error", err)
			continue
		}
		converted[i].Content = markdown
	}
	return converted
}

package eventstore

import (
	"regexp"
	"strings"
)

// Markers wrapped around matching spans by Highlight.
const (
	MarkStart = "<mark>"
	MarkEnd   = "</mark>"
)

// Search filters the collection against a user-supplied pattern, matching
// case-insensitively on title, description, display location and tag (an
// event matches when any of the four fields matches).
//
// The pattern is first compiled as a case-insensitive regular expression.
// When it does not compile, Search falls back to plain case-insensitive
// substring matching on the same fields - a malformed pattern is never
// surfaced to the caller. An empty pattern returns the input unchanged.
func Search(records EventRecords, pattern string) EventRecords {
	if pattern == "" {
		return records
	}

	if re, err := compilePattern(pattern); err == nil {
		return filterRecords(records, func(field string) bool {
			return re.MatchString(field)
		})
	}

	needle := strings.ToLower(pattern)

	return filterRecords(records, func(field string) bool {
		return strings.Contains(strings.ToLower(field), needle)
	})
}

// Highlight wraps every non-overlapping match of pattern within text in
// MarkStart/MarkEnd markers, using the same regex-else-substring fallback as
// Search. It returns the input unchanged when pattern or text is empty.
func Highlight(text string, pattern string) string {
	if pattern == "" || text == "" {
		return text
	}

	if re, err := compilePattern(pattern); err == nil {
		return re.ReplaceAllStringFunc(text, func(match string) string {
			if match == "" {
				return match
			}

			return MarkStart + match + MarkEnd
		})
	}

	return highlightSubstring(text, pattern)
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + pattern)
}

func filterRecords(records EventRecords, matches func(field string) bool) EventRecords {
	filtered := make(EventRecords, 0, len(records))

	for _, record := range records {
		if matches(record.Title) ||
			matches(record.Description) ||
			matches(record.DisplayLocation()) ||
			matches(record.Tag) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

// highlightSubstring marks all case-insensitive occurrences of needle,
// preserving the original casing of the marked spans.
func highlightSubstring(text string, needle string) string {
	lowerText := strings.ToLower(text)
	lowerNeedle := strings.ToLower(needle)

	if len(lowerText) != len(text) || lowerNeedle == "" {
		// Lowercasing changed byte offsets (rare non-ASCII folds);
		// marking spans by index would corrupt the text.
		return text
	}

	var marked strings.Builder

	i := 0
	for i < len(text) {
		if strings.HasPrefix(lowerText[i:], lowerNeedle) {
			marked.WriteString(MarkStart)
			marked.WriteString(text[i : i+len(lowerNeedle)])
			marked.WriteString(MarkEnd)
			i += len(lowerNeedle)

			continue
		}

		marked.WriteByte(text[i])
		i++
	}

	return marked.String()
}

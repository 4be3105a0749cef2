package analyzer

import (
	"regexp"
	"strings"
)

// Hashtags keep their # marker only in raw text, so extraction runs on
// the untokenized input.
var hashtagPattern = regexp.MustCompile(`#([A-Za-z0-9_]+)`)

// ExtractHashtags returns the distinct hashtags of the raw text,
// lowercased, without the leading #, in order of first appearance.
func ExtractHashtags(raw string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

package util

import (
	"regexp"
	"strconv"
	"strings"
)

// SearchQuery represents the parsed components of a calendar search string,
// e.g. "type:pace status:done week:7 hill".
type SearchQuery struct {
	Type   []string
	Status []string
	Weeks  []int
	Text   []string
}

var (
	typeRegex   = regexp.MustCompile(`type:(\w+)`)
	statusRegex = regexp.MustCompile(`status:(\w+)`)
	weekRegex   = regexp.MustCompile(`week:(\d+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured components.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, strings.ToLower(match[1]))
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Type = extract(typeRegex)
	sq.Status = extract(statusRegex)
	for _, w := range extract(weekRegex) {
		if n, err := strconv.Atoi(w); err == nil {
			sq.Weeks = append(sq.Weeks, n)
		}
	}
	for _, word := range strings.Fields(query) {
		sq.Text = append(sq.Text, strings.ToLower(word))
	}

	return sq
}

// Empty reports whether the query carries no filters at all.
func (q SearchQuery) Empty() bool {
	return len(q.Type) == 0 && len(q.Status) == 0 && len(q.Weeks) == 0 && len(q.Text) == 0
}

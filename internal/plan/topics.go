package plan

import "strings"

// ExtractTopics parses a free-text day description into an ordered list
// of discrete subtopics. Segments are split on '.', ';' and newlines.
// A segment with a "Subject:" prefix applies that prefix to every
// comma-separated item on the right, so "Math: Algebra, Geometry"
// yields "Math: Algebra" and "Math: Geometry". Segments without a
// prefix are split on commas as-is. Empty items are dropped; an empty
// description yields an empty list.
func ExtractTopics(description string) []string {
	topics := []string{}
	if strings.TrimSpace(description) == "" {
		return topics
	}

	segments := strings.FieldsFunc(description, func(r rune) bool {
		return r == '.' || r == ';' || r == '\n'
	})

	for _, seg := range segments {
		subject, rest, found := strings.Cut(seg, ":")
		if found {
			subject = strings.TrimSpace(subject)
			for _, item := range strings.Split(rest, ",") {
				item = strings.TrimSpace(item)
				if item == "" {
					continue
				}
				if subject != "" {
					topics = append(topics, subject+": "+item)
				} else {
					topics = append(topics, item)
				}
			}
			continue
		}
		for _, item := range strings.Split(seg, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				topics = append(topics, item)
			}
		}
	}

	return topics
}

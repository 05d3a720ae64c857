package llm

import "strings"

// Finding is one CATEGORY|MATCHED_TEXT line recovered from model output.
type Finding struct {
	Category string
	Text     string
}

// ParseFindings parses model output line-by-line. Each line is either the
// literal NONE or CATEGORY|MATCHED_TEXT; any other shape is ignored, not
// treated as an error. A NONE line anywhere yields no findings from that
// line but does not stop parsing (models occasionally mix formats).
func ParseFindings(content string) []Finding {
	var findings []Finding

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, "NONE") {
			continue
		}

		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			continue
		}

		category := strings.TrimSpace(parts[0])
		matched := strings.TrimSpace(parts[1])
		if category == "" || matched == "" {
			continue
		}

		findings = append(findings, Finding{Category: category, Text: matched})
	}

	return findings
}

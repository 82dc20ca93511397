// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import (
	"regexp"
	"strings"
)

// labelRe matches a \label binding at the very start of its window,
// after optional whitespace.
var labelRe = regexp.MustCompile(`^\s*\\label\{([^}]+)\}`)

// labelWindow bounds how far past an opening marker the label scan may
// look, so an absent label never drags the scan into unrelated content.
const labelWindow = 200

// extractLabel looks for a \label immediately following a statement's
// opening marker. It returns the bound identifier and the offset just
// past the marker, or ("", start) when no label leads the body.
func extractLabel(text string, start int) (string, int) {
	end := start + labelWindow
	if end > len(text) {
		end = len(text)
	}

	m := labelRe.FindStringSubmatchIndex(text[start:end])
	if m == nil {
		return "", start
	}

	label := strings.TrimSpace(text[start+m[2] : start+m[3]])
	return label, start + m[1]
}

// extractEnvironment scans forward from start for the \end matching an
// already-consumed \begin of the given raw environment name, honoring
// nested begin/end pairs of that same name (starred or not). It returns
// the enclosed content and the offset just past the closing marker.
// When no closing marker exists the rest of the document is the content:
// truncation, not failure. The scan position strictly advances, so the
// loop always terminates.
func extractEnvironment(text string, start int, rawName string) (string, int) {
	base := strings.TrimRight(rawName, "*")
	marker := regexp.MustCompile(`(?i)\\(begin|end)\{` + regexp.QuoteMeta(base) + `\*?\}`)

	depth := 1
	pos := start

	for pos < len(text) {
		m := marker.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			return text[start:], len(text)
		}

		matchStart := pos + m[0]
		matchEnd := pos + m[1]

		if strings.EqualFold(text[pos+m[2]:pos+m[3]], "begin") {
			depth++
		} else {
			depth--
			if depth == 0 {
				return text[start:matchStart], matchEnd
			}
		}

		pos = matchEnd
	}

	return text[start:], len(text)
}

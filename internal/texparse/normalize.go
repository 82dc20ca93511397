// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import (
	"regexp"
	"strings"
)

// Presentation commands removed or unwrapped during normalization.
// Math notation and structural environments pass through untouched.
var (
	// spacingRe matches page and spacing control commands that carry no
	// mathematical content.
	spacingRe = regexp.MustCompile(`\\vspace\{[^}]+\}|\\hspace\{[^}]+\}|\\newpage|\\clearpage|\\pagebreak`)

	// formattingRe matches pure text-formatting wrappers whose argument
	// is kept while the command itself is discarded.
	formattingRe = regexp.MustCompile(`\\(?:textbf|textit|emph)\{([^}]+)\}`)

	// blankRunRe matches three or more consecutive blank lines.
	blankRunRe = regexp.MustCompile(`\n\s*\n\s*\n+`)

	// hspaceRunRe matches runs of horizontal whitespace.
	hspaceRunRe = regexp.MustCompile(`[ \t]+`)
)

// cleanContent normalizes a statement or proof body: spacing and page
// commands are deleted, formatting wrappers are unwrapped to their
// argument, excess blank lines collapse to one, horizontal whitespace
// runs collapse to a single space, and the result is trimmed.
func cleanContent(content string) string {
	content = spacingRe.ReplaceAllString(content, "")
	content = formattingRe.ReplaceAllString(content, "$1")
	content = blankRunRe.ReplaceAllString(content, "\n\n")
	content = hspaceRunRe.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}

// minContentRunes is the smallest number of non-whitespace characters a
// normalized body must contain to be kept.
const minContentRunes = 3

// substantial reports whether a normalized body clears the minimum
// content threshold.
func substantial(content string) bool {
	count := 0
	for _, r := range content {
		if !isSpaceRune(r) {
			count++
			if count >= minContentRunes {
				return true
			}
		}
	}
	return false
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

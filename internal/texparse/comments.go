// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import "strings"

// StripComments removes LaTeX line comments. A comment starts at the
// first % on a line that is not escaped as \%, and runs to end of line.
// Newlines are preserved so document offsets stay line-stable. There is
// no cross-line comment syntax.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, len(lines))

	for i, line := range lines {
		cleaned[i] = stripLineComment(line)
	}

	return strings.Join(cleaned, "\n")
}

// stripLineComment truncates one line at its first unescaped %.
func stripLineComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '%' && (i == 0 || line[i-1] != '\\') {
			return line[:i]
		}
	}
	return line
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import (
	"regexp"
	"strings"
)

// refRe matches \ref{label} and \eqref{label} cross-references.
var refRe = regexp.MustCompile(`\\(?:eq)?ref\{([^}]+)\}`)

// ExtractReferences returns the cross-referenced identifiers found in
// text, trimmed, with duplicates removed and first-seen order preserved.
// Returns nil when the text references nothing.
func ExtractReferences(text string) []string {
	seen := make(map[string]bool)
	var refs []string

	for _, m := range refRe.FindAllStringSubmatch(text, -1) {
		label := strings.TrimSpace(m[1])
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		refs = append(refs, label)
	}

	return refs
}

// mergeReferences appends the extra identifiers to refs, keeping
// first-seen order and dropping duplicates already present.
func mergeReferences(refs, extra []string) []string {
	seen := make(map[string]bool, len(refs))
	for _, r := range refs {
		seen[r] = true
	}
	for _, r := range extra {
		if seen[r] {
			continue
		}
		seen[r] = true
		refs = append(refs, r)
	}
	return refs
}

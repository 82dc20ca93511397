// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate flags quality problems in extracted statement blocks.
// Findings are reportable issues and advisory warnings, never errors:
// a document that fails every check still parses and exports.
package validate

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/theorem-engine/pkg/types"
)

// mathMarkers are the tokens whose presence counts as mathematical
// content in a block body.
var mathMarkers = []string{"$", `\[`, `\(`, `\begin{equation`}

// shortContentLen is the advisory threshold below which content is
// flagged as suspiciously short.
const shortContentLen = 20

// Result holds the findings for one block sequence.
type Result struct {
	// Issues are reportable problems: provable statements without an
	// associated proof.
	Issues []string

	// Warnings are advisory: missing math markers, very short content,
	// untitled theorems and propositions.
	Warnings []string
}

// Clean reports whether validation found nothing to flag.
func (r Result) Clean() bool {
	return len(r.Issues) == 0 && len(r.Warnings) == 0
}

// Check inspects each block and collects findings. Block numbers in the
// findings are 1-based extraction positions.
func Check(blocks []types.StatementBlock) Result {
	var res Result

	for i, b := range blocks {
		n := i + 1

		if b.Kind.Provable() && !b.HasProof() {
			res.Issues = append(res.Issues, fmt.Sprintf("block %d (%s): no proof", n, b.Kind))
		}

		if !hasMath(b.Content) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("block %d (%s): no mathematical notation", n, b.Kind))
		}

		if len(strings.TrimSpace(b.Content)) < shortContentLen {
			res.Warnings = append(res.Warnings, fmt.Sprintf("block %d (%s): very short content", n, b.Kind))
		}

		if (b.Kind == types.KindTheorem || b.Kind == types.KindProposition) && b.Title == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("block %d (%s): no title", n, b.Kind))
		}
	}

	return res
}

// Render writes the findings to w, issues before warnings.
func Render(w io.Writer, res Result) {
	if res.Clean() {
		fmt.Fprintln(w, "All blocks passed validation.")
		return
	}

	if len(res.Issues) > 0 {
		fmt.Fprintf(w, "Issues (%d):\n", len(res.Issues))
		for _, issue := range res.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
	}

	if len(res.Warnings) > 0 {
		if len(res.Issues) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Warnings (%d):\n", len(res.Warnings))
		for _, warning := range res.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

// hasMath reports whether content contains any math marker.
func hasMath(content string) bool {
	for _, marker := range mathMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders human-readable views of extracted statement
// blocks: a per-block summary and aggregate statistics. All output goes
// to an injected io.Writer; nothing here mutates the blocks.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/theorem-engine/pkg/types"
)

const previewLen = 120

// Summary writes a one-entry-per-block listing: kind, optional title and
// label, proof mark, references, and a content preview.
func Summary(w io.Writer, blocks []types.StatementBlock) {
	if len(blocks) == 0 {
		fmt.Fprintln(w, "No statement blocks found.")
		return
	}

	fmt.Fprintf(w, "%d blocks extracted\n\n", len(blocks))

	for i, b := range blocks {
		line := fmt.Sprintf("%d. %s", i+1, strings.ToUpper(string(b.Kind)))
		if b.Title != "" {
			line += fmt.Sprintf(" [%s]", b.Title)
		}
		if b.Label != "" {
			line += fmt.Sprintf(" (label: %s)", b.Label)
		}
		if b.HasProof() {
			line += " +proof"
		}
		fmt.Fprintln(w, line)

		if len(b.References) > 0 {
			fmt.Fprintf(w, "   references: %s\n", strings.Join(b.References, ", "))
		}

		fmt.Fprintf(w, "   %s\n\n", preview(b.Content))
	}
}

// preview truncates content to a single summary line.
func preview(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) > previewLen {
		return content[:previewLen] + "..."
	}
	return content
}

// Statistics writes aggregate metrics over the block sequence: per-kind
// distribution, coverage ratios for titles, labels, proofs, and
// references, and average content and proof lengths.
func Statistics(w io.Writer, blocks []types.StatementBlock) {
	if len(blocks) == 0 {
		fmt.Fprintln(w, "No statement blocks to analyze.")
		return
	}

	total := len(blocks)
	fmt.Fprintf(w, "Total blocks: %d\n\n", total)

	counts := make(map[types.StatementKind]int)
	for _, b := range blocks {
		counts[b.Kind]++
	}

	kinds := make([]types.StatementKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if counts[kinds[i]] != counts[kinds[j]] {
			return counts[kinds[i]] > counts[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	fmt.Fprintln(w, "Distribution by kind:")
	for _, k := range kinds {
		n := counts[k]
		fmt.Fprintf(w, "  %-15s %3d (%5.1f%%)\n", k, n, percent(n, total))
	}

	withTitle, withLabel, withProof, withRefs, totalRefs := 0, 0, 0, 0, 0
	contentLen, proofLen, proofBlocks := 0, 0, 0
	for _, b := range blocks {
		if b.Title != "" {
			withTitle++
		}
		if b.Label != "" {
			withLabel++
		}
		if b.HasProof() {
			withProof++
			proofLen += len(b.Proof)
			proofBlocks++
		}
		if len(b.References) > 0 {
			withRefs++
			totalRefs += len(b.References)
		}
		contentLen += len(b.Content)
	}

	fmt.Fprintf(w, "\nWith title:      %d/%d (%.1f%%)\n", withTitle, total, percent(withTitle, total))
	fmt.Fprintf(w, "With label:      %d/%d (%.1f%%)\n", withLabel, total, percent(withLabel, total))
	fmt.Fprintf(w, "With proof:      %d/%d (%.1f%%)\n", withProof, total, percent(withProof, total))
	fmt.Fprintf(w, "With references: %d/%d (%.1f%%)\n", withRefs, total, percent(withRefs, total))
	if totalRefs > 0 {
		fmt.Fprintf(w, "Total references: %d\n", totalRefs)
	}

	fmt.Fprintf(w, "\nAverage content length: %.0f characters\n", float64(contentLen)/float64(total))
	if proofBlocks > 0 {
		fmt.Fprintf(w, "Average proof length:   %.0f characters\n", float64(proofLen)/float64(proofBlocks))
	}
}

func percent(n, total int) float64 {
	return float64(n) / float64(total) * 100
}

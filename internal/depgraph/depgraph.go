// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package depgraph resolves cross-references between extracted statement
// blocks into a dependency graph and renders it as text or Graphviz DOT.
package depgraph

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/theorem-engine/pkg/types"
)

// Node describes the block a label resolves to.
type Node struct {
	// Index is the 1-based position of the block in the extraction order.
	Index int

	// Kind is the block's statement kind.
	Kind types.StatementKind

	// Title is the block's title, if any.
	Title string
}

// Graph maps labels to the blocks that declare them.
type Graph struct {
	labels map[string]Node
	blocks []types.StatementBlock
}

// Build indexes the labeled blocks of a sequence. Later declarations of
// a duplicate label win, matching document order.
func Build(blocks []types.StatementBlock) *Graph {
	labels := make(map[string]Node)
	for i, b := range blocks {
		if b.Label == "" {
			continue
		}
		labels[b.Label] = Node{Index: i + 1, Kind: b.Kind, Title: b.Title}
	}
	return &Graph{labels: labels, blocks: blocks}
}

// Resolve looks up the block declaring a referenced label.
func (g *Graph) Resolve(label string) (Node, bool) {
	n, ok := g.labels[label]
	return n, ok
}

// Labeled returns the number of blocks that declare a label.
func (g *Graph) Labeled() int {
	return len(g.labels)
}

// Render writes a textual dependency listing: for each block with
// references, its resolved dependencies and, distinctly, the references
// that match no labeled block in the document.
func (g *Graph) Render(w io.Writer) {
	if len(g.blocks) == 0 {
		fmt.Fprintln(w, "No statement blocks to analyze.")
		return
	}

	withRefs := 0
	for _, b := range g.blocks {
		if len(b.References) > 0 {
			withRefs++
		}
	}

	fmt.Fprintf(w, "Blocks with label: %d/%d\n", len(g.labels), len(g.blocks))
	fmt.Fprintf(w, "Blocks with references: %d/%d\n\n", withRefs, len(g.blocks))

	if withRefs == 0 {
		fmt.Fprintln(w, "No dependencies between blocks.")
		return
	}

	for i, b := range g.blocks {
		if len(b.References) == 0 {
			continue
		}

		header := fmt.Sprintf("%d. %s", i+1, strings.ToUpper(string(b.Kind)))
		if b.Title != "" {
			header += fmt.Sprintf(" [%s]", b.Title)
		}
		if b.Label != "" {
			header += fmt.Sprintf(" (%s)", b.Label)
		}
		fmt.Fprintln(w, header)

		for _, ref := range b.References {
			if n, ok := g.Resolve(ref); ok {
				line := fmt.Sprintf("   -> block %d: %s", n.Index, strings.ToUpper(string(n.Kind)))
				if n.Title != "" {
					line += fmt.Sprintf(" [%s]", n.Title)
				}
				fmt.Fprintln(w, line)
			} else {
				fmt.Fprintf(w, "   -> %s (unresolved)\n", ref)
			}
		}
		fmt.Fprintln(w)
	}
}

// DOT writes the dependency graph in Graphviz DOT format. Each block is
// a node; edges point from a block to the blocks it references.
// Unresolved references become dashed edges to a distinct node.
func (g *Graph) DOT(w io.Writer) {
	fmt.Fprintln(w, "digraph statements {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  node [fontname=\"Helvetica\" fontsize=10 shape=box];")

	for i, b := range g.blocks {
		label := fmt.Sprintf("%d: %s", i+1, b.Kind)
		if b.Title != "" {
			label += "\\n" + escapeDOT(b.Title)
		}
		fmt.Fprintf(w, "  b%d [label=\"%s\"];\n", i+1, label)
	}

	unresolved := make(map[string]bool)
	for i, b := range g.blocks {
		for _, ref := range b.References {
			if n, ok := g.Resolve(ref); ok {
				fmt.Fprintf(w, "  b%d -> b%d;\n", i+1, n.Index)
				continue
			}
			if !unresolved[ref] {
				unresolved[ref] = true
				fmt.Fprintf(w, "  %s [label=\"%s\" shape=ellipse style=dashed];\n", dotID(ref), escapeDOT(ref))
			}
			fmt.Fprintf(w, "  b%d -> %s [style=dashed];\n", i+1, dotID(ref))
		}
	}

	fmt.Fprintln(w, "}")
}

// dotID turns a reference label into a safe DOT node identifier.
func dotID(label string) string {
	var sb strings.Builder
	sb.WriteString("ref_")
	for _, r := range label {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

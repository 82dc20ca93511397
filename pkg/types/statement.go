// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value types shared across the extraction
// pipeline and its collaborators.
package types

// StatementKind categorizes an extracted mathematical statement.
// Custom environment names that resist heuristic classification are
// carried through as their lowercased raw name.
type StatementKind string

const (
	KindDefinition  StatementKind = "definition"
	KindTheorem     StatementKind = "theorem"
	KindLemma       StatementKind = "lemma"
	KindProposition StatementKind = "proposition"
	KindCorollary   StatementKind = "corollary"
)

// CanonicalKinds lists the recognized statement categories in their
// base spelling.
var CanonicalKinds = []StatementKind{
	KindDefinition,
	KindTheorem,
	KindLemma,
	KindProposition,
	KindCorollary,
}

// Canonical reports whether k is one of the five base categories rather
// than an unclassified custom name.
func (k StatementKind) Canonical() bool {
	switch k {
	case KindDefinition, KindTheorem, KindLemma, KindProposition, KindCorollary:
		return true
	}
	return false
}

// Provable reports whether statements of this kind are expected to carry
// a proof. Definitions and unclassified custom kinds are not.
func (k StatementKind) Provable() bool {
	switch k {
	case KindTheorem, KindLemma, KindProposition, KindCorollary:
		return true
	}
	return false
}

// StatementBlock is one extracted statement with its metadata. It is a
// fully materialized value: no field aliases the source document buffer.
type StatementBlock struct {
	// Kind is the normalized statement category.
	Kind StatementKind `json:"kind" yaml:"kind"`

	// Label is the \label identifier bound immediately inside the
	// environment, if any.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Title is the optional bracketed title from the opening marker,
	// e.g. \begin{theorem}[Lagrange].
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Content is the normalized statement body.
	Content string `json:"content_latex" yaml:"content_latex"`

	// Proof is the normalized body of the associated proof environment.
	// Empty when no proof was associated or the proof body was trivial.
	Proof string `json:"proof_latex,omitempty" yaml:"proof_latex,omitempty"`

	// References lists \ref/\eqref identifiers found in the content and
	// proof, duplicates removed, first-seen order. Nil when none.
	References []string `json:"references,omitempty" yaml:"references,omitempty"`
}

// HasProof reports whether a proof body was associated with the block.
func (b StatementBlock) HasProof() bool {
	return b.Proof != ""
}

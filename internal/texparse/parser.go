// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package texparse extracts structured mathematical statements and their
// proofs from LaTeX source. It is a lexical scanner, not a grammar: it
// locates statement and proof environments by balanced marker matching,
// performs shallow content cleanup, and never fails on malformed input.
package texparse

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/theorem-engine/pkg/types"
)

// Parser holds the compiled matchers for one document's environment set.
// A Parser is immutable once built; construction happens after custom
// environment detection so the matcher set never changes mid-scan.
type Parser struct {
	envBegin   *regexp.Regexp
	proofBegin *regexp.Regexp
	proofEnd   *regexp.Regexp
}

// NewParser builds a parser recognizing the base statement environments,
// their localized and abbreviated variants, and any additional custom
// environment names.
func NewParser(customEnvs []string) *Parser {
	p := &Parser{
		envBegin: compileBeginMatcher(registeredNames(customEnvs)),
	}
	p.proofBegin, p.proofEnd = compileProofMatchers()
	return p
}

// DefaultConfig returns the parser settings used when the caller
// supplies none: auto-detection on, no preset custom environments.
func DefaultConfig() types.ParserConfig {
	return types.ParserConfig{AutoDetect: true}
}

// Parse extracts all statement blocks from a LaTeX document. Comments
// are stripped first; when cfg.AutoDetect is set, \newtheorem
// declarations register their environment names before the main scan.
// Parse is deterministic and total: malformed or truncated markup
// degrades to shorter blocks, never to an error.
func Parse(text string, cfg types.ParserConfig) []types.StatementBlock {
	text = StripComments(text)

	custom := cfg.CustomEnvironments
	if cfg.AutoDetect {
		custom = append(append([]string(nil), custom...), DetectCustomEnvironments(text)...)
	}

	return NewParser(custom).scan(text)
}

// scan is the document walker: it repeatedly finds the next statement
// opening marker, extracts label, balanced content, and an adjacent
// proof, and advances past whatever was consumed.
func (p *Parser) scan(text string) []types.StatementBlock {
	var blocks []types.StatementBlock
	pos := 0

	for pos < len(text) {
		m := p.envBegin.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}

		rawName := text[pos+m[2] : pos+m[3]]
		title := ""
		if m[4] >= 0 {
			title = strings.TrimSpace(text[pos+m[4] : pos+m[5]])
		}

		label, contentStart := extractLabel(text, pos+m[1])
		content, contentEnd := extractEnvironment(text, contentStart, rawName)

		cleaned := cleanContent(content)
		if !substantial(cleaned) {
			// Discard the block but advance past its span so the same
			// text is never rescanned.
			pos = contentEnd
			continue
		}

		refs := ExtractReferences(content)

		proof := ""
		nextPos := contentEnd
		if proofContent, proofEnd, ok := p.extractProof(text, contentEnd); ok {
			if proofCleaned := cleanContent(proofContent); substantial(proofCleaned) {
				proof = proofCleaned
				refs = mergeReferences(refs, ExtractReferences(proofContent))
			}
			nextPos = proofEnd
		}

		blocks = append(blocks, types.StatementBlock{
			Kind:       normalizeEnvKind(rawName),
			Label:      label,
			Title:      title,
			Content:    cleaned,
			Proof:      proof,
			References: refs,
		})

		pos = nextPos
	}

	return blocks
}

// ParseFile reads a .tex file and extracts its statement blocks. This is
// the thin I/O wrapper around Parse and the only error-returning surface
// of the package: it reports a missing file or a non-.tex path, never a
// parse failure.
func ParseFile(path string, cfg types.ParserConfig) ([]types.StatementBlock, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file %s: %w", path, err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".tex") {
		return nil, fmt.Errorf("input file %s: expected .tex extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return Parse(string(data), cfg), nil
}

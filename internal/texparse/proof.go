// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import "strings"

// extractProof attempts to associate a proof environment that follows a
// statement at start. Association requires pure whitespace between the
// statement's end and the proof's opening marker; any other intervening
// text means the proof belongs elsewhere. On success it returns the raw
// proof body and the offset past the closing marker, with found=true.
//
// The balance scan counts the begin/end markers of every proof synonym
// toward one shared depth, so an environment opened under one synonym
// may close under another. A missing closing marker truncates the proof
// at end of document.
func (p *Parser) extractProof(text string, start int) (content string, end int, found bool) {
	remaining := text[start:]

	open := p.proofBegin.FindStringIndex(remaining)
	if open == nil {
		return "", start, false
	}
	if strings.TrimSpace(remaining[:open[0]]) != "" {
		return "", start, false
	}

	contentStart := start + open[1]
	depth := 1
	pos := contentStart

	for pos < len(text) {
		begin := p.proofBegin.FindStringIndex(text[pos:])
		closing := p.proofEnd.FindStringIndex(text[pos:])

		var next []int
		isBegin := false
		switch {
		case begin != nil && closing != nil:
			if begin[0] < closing[0] {
				next, isBegin = begin, true
			} else {
				next = closing
			}
		case begin != nil:
			next, isBegin = begin, true
		case closing != nil:
			next = closing
		default:
			return text[contentStart:], len(text), true
		}

		if isBegin {
			depth++
		} else {
			depth--
			if depth == 0 {
				return text[contentStart : pos+next[0]], pos + next[1], true
			}
		}

		pos += next[1]
	}

	return text[contentStart:], len(text), true
}

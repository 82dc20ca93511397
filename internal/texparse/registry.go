// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/theorem-engine/pkg/types"
)

// environmentAliases maps localized and abbreviated environment names to
// their canonical kind. Lookups are against the lowercased, unstarred name.
var environmentAliases = map[string]types.StatementKind{
	"teorema":     types.KindTheorem,
	"definicion":  types.KindDefinition,
	"definición":  types.KindDefinition,
	"lema":        types.KindLemma,
	"proposicion": types.KindProposition,
	"proposición": types.KindProposition,
	"corolario":   types.KindCorollary,
	"thm":         types.KindTheorem,
	"defn":        types.KindDefinition,
	"def":         types.KindDefinition,
	"lem":         types.KindLemma,
	"prop":        types.KindProposition,
	"cor":         types.KindCorollary,
	"corol":       types.KindCorollary,
}

// proofEnvironments lists the environment names treated as proofs.
// English and Spanish spellings are interchangeable.
var proofEnvironments = []string{"proof", "prueba", "demostracion", "demostración", "dem"}

// isCanonicalName reports whether name (already lowercased) is one of
// the base statement environments.
func isCanonicalName(name string) bool {
	return types.StatementKind(name).Canonical()
}

// registeredNames returns the full set of environment names the parser
// recognizes: canonical kinds, aliases, and the supplied custom names.
func registeredNames(custom []string) []string {
	seen := make(map[string]bool)
	var names []string

	add := func(name string) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, k := range types.CanonicalKinds {
		add(string(k))
	}
	for alias := range environmentAliases {
		add(alias)
	}
	for _, name := range custom {
		add(name)
	}

	return names
}

// compileBeginMatcher builds the matcher for statement opening markers:
// \begin{name} with an optional star and an optional bracketed title.
// Longer names sort first so a short alias never shadows a longer one.
func compileBeginMatcher(names []string) *regexp.Regexp {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	quoted := make([]string, len(sorted))
	for i, name := range sorted {
		quoted[i] = regexp.QuoteMeta(name)
	}

	pattern := `(?i)\\begin\{(` + strings.Join(quoted, "|") + `)\*?\}(?:\[([^\]]*)\])?`
	return regexp.MustCompile(pattern)
}

// compileProofMatchers builds the begin and end matchers for the proof
// environment synonyms.
func compileProofMatchers() (begin, end *regexp.Regexp) {
	quoted := make([]string, len(proofEnvironments))
	for i, name := range proofEnvironments {
		quoted[i] = regexp.QuoteMeta(name)
	}
	alt := strings.Join(quoted, "|")

	begin = regexp.MustCompile(`(?i)\\begin\{(?:` + alt + `)\*?\}`)
	end = regexp.MustCompile(`(?i)\\end\{(?:` + alt + `)\*?\}`)
	return begin, end
}

// normalizeEnvKind maps a raw matched environment name to its statement
// kind. Aliases and canonical names resolve directly; anything else goes
// through substring heuristics whose order is load-bearing: a name that
// contains several trigger fragments resolves to the first one tried.
func normalizeEnvKind(raw string) types.StatementKind {
	name := strings.TrimRight(strings.ToLower(raw), "*")

	if kind, ok := environmentAliases[name]; ok {
		return kind
	}
	if isCanonicalName(name) {
		return types.StatementKind(name)
	}

	switch {
	case strings.Contains(name, "th") || strings.Contains(name, "teo"):
		return types.KindTheorem
	case strings.Contains(name, "def"):
		return types.KindDefinition
	case strings.Contains(name, "lem"):
		return types.KindLemma
	case strings.Contains(name, "prop"):
		return types.KindProposition
	case strings.Contains(name, "cor"):
		return types.KindCorollary
	}

	return types.StatementKind(name)
}

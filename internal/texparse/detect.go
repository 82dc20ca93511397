// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import (
	"regexp"
	"strings"
)

// Custom environment declaration patterns.
var (
	// newtheoremRe matches \newtheorem{name}{Title} and the starred and
	// counter-sharing forms \newtheorem*{name}{Title},
	// \newtheorem{name}[counter]{Title}.
	newtheoremRe = regexp.MustCompile(`\\newtheorem\*?\{([^}]+)\}(?:\[[^\]]*\])?\{[^}]+\}`)

	// theoremstyleRe matches a \theoremstyle directive directly followed
	// by a \newtheorem, capturing the introduced environment name.
	theoremstyleRe = regexp.MustCompile(`(?s)\\theoremstyle\{[^}]+\}\s*\\newtheorem\*?\{([^}]+)\}`)
)

// DetectCustomEnvironments scans a whole document for \newtheorem
// declarations and returns the environment names they introduce, in
// first-appearance order with duplicates removed. Names matching a base
// statement environment are skipped; the declaration adds nothing.
func DetectCustomEnvironments(text string) []string {
	seen := make(map[string]bool)
	var custom []string

	collect := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || isCanonicalName(strings.ToLower(name)) || seen[name] {
			return
		}
		seen[name] = true
		custom = append(custom, name)
	}

	for _, m := range newtheoremRe.FindAllStringSubmatch(text, -1) {
		collect(m[1])
	}
	for _, m := range theoremstyleRe.FindAllStringSubmatch(text, -1) {
		collect(m[1])
	}

	return custom
}

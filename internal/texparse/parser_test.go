package texparse

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/theorem-engine/pkg/types"
)

// sampleDoc mirrors a small Spanish-language algebra handout: a titled
// definition, a titled theorem with proof, an unproved lemma, and a
// titled proposition with proof.
const sampleDoc = `
\documentclass{article}
\usepackage{amsmath, amsthm}

\newtheorem{theorem}{Teorema}
\newtheorem{lemma}{Lema}
\newtheorem{definition}{Definición}

\begin{document}

% this comment must be ignored

\begin{definition}[Grupo]
\label{def:grupo}
Un \textbf{grupo} es un par $(G, \cdot)$ donde $G$ es un conjunto no vacío
y $\cdot$ es una operación binaria asociativa con neutro e inversos.
\end{definition}

\vspace{1cm}

\begin{theorem}[Teorema de Lagrange]
\label{thm:lagrange}
Sea $G$ un grupo finito y $H$ un subgrupo de $G$ (ver \ref{def:grupo}).
Entonces $|G| = |H| \cdot [G:H]$.
\end{theorem}

\begin{proof}
Las clases laterales de $H$ particionan $G$ y cada una tiene $|H|$
elementos, así que $|G| = k \cdot |H|$ con $k = [G:H]$.
\end{proof}

\newpage

\begin{lemma}
Si $G$ es abeliano, entonces $(ab)^n = a^n b^n$ para todo $n$.
\end{lemma}

% este lema no tiene demostración

\begin{proposition}[Unicidad del Neutro]
En un grupo $(G, \cdot)$, el elemento neutro es único.
\end{proposition}

\begin{proof}
Si $e$ y $e'$ son neutros, $e = e \cdot e' = e'$ por \eqref{thm:lagrange}.
\end{proof}

\end{document}
`

// --- StripComments ---

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "full-line comment",
			in:   "text\n% comment\nmore",
			want: "text\n\nmore",
		},
		{
			name: "trailing comment",
			in:   "x = 1 % set x",
			want: "x = 1 ",
		},
		{
			name: "escaped percent kept",
			in:   `interest of 5\% annually`,
			want: `interest of 5\% annually`,
		},
		{
			name: "escaped then real comment",
			in:   `5\% rate % note`,
			want: `5\% rate `,
		},
		{
			name: "comment at line start",
			in:   "%comment",
			want: "",
		},
		{
			name: "newlines preserved",
			in:   "a\n%b\n%c\nd",
			want: "a\n\n\nd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComments(tt.in); got != tt.want {
				t.Errorf("StripComments(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- cleanContent ---

func TestCleanContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "spacing commands removed",
			in:   `before \vspace{1cm} after \newpage end`,
			want: "before after end",
		},
		{
			name: "formatting unwrapped",
			in:   `a \textbf{bold} and \emph{stressed} word`,
			want: "a bold and stressed word",
		},
		{
			name: "horizontal whitespace collapsed",
			in:   "a  \t b",
			want: "a b",
		},
		{
			name: "blank line runs collapsed",
			in:   "a\n\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "math untouched",
			in:   `$\sum_{i=1}^n i = \frac{n(n+1)}{2}$`,
			want: `$\sum_{i=1}^n i = \frac{n(n+1)}{2}$`,
		},
		{
			name: "trimmed",
			in:   "  \n body \n ",
			want: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanContent(tt.in); got != tt.want {
				t.Errorf("cleanContent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubstantial(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"ab", false},
		{"abc", true},
		{"a b c", true},
		{"  \n\t ", false},
		{"x y", false},
	}
	for _, tt := range tests {
		if got := substantial(tt.in); got != tt.want {
			t.Errorf("substantial(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// --- ExtractReferences ---

func TestExtractReferences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "ref and eqref",
			in:   `see \ref{thm:main} and \eqref{eq:sum}`,
			want: []string{"thm:main", "eq:sum"},
		},
		{
			name: "duplicates removed first-seen order",
			in:   `\ref{a} \ref{b} \ref{a} \ref{c}`,
			want: []string{"a", "b", "c"},
		},
		{
			name: "whitespace trimmed",
			in:   `\ref{ thm:spaced }`,
			want: []string{"thm:spaced"},
		},
		{
			name: "no references",
			in:   "plain text with $math$",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractReferences(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractReferences(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// --- extractLabel ---

func TestExtractLabel(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLabel string
		moved     bool
	}{
		{
			name:      "label directly after marker",
			text:      `\label{thm:x} content`,
			wantLabel: "thm:x",
			moved:     true,
		},
		{
			name:      "label after whitespace and newline",
			text:      "\n  \\label{lem:y}\nbody",
			wantLabel: "lem:y",
			moved:     true,
		},
		{
			name:      "no label",
			text:      "just content here",
			wantLabel: "",
			moved:     false,
		},
		{
			name:      "label not first token",
			text:      `content \label{late}`,
			wantLabel: "",
			moved:     false,
		},
		{
			name:      "label beyond lookahead window",
			text:      strings.Repeat("x", labelWindow) + `\label{far}`,
			wantLabel: "",
			moved:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, pos := extractLabel(tt.text, 0)
			if label != tt.wantLabel {
				t.Errorf("label = %q, want %q", label, tt.wantLabel)
			}
			if tt.moved && pos == 0 {
				t.Error("position did not advance past label")
			}
			if !tt.moved && pos != 0 {
				t.Errorf("position moved to %d without a label", pos)
			}
		})
	}
}

// --- extractEnvironment ---

func TestExtractEnvironmentNesting(t *testing.T) {
	text := `inner \begin{theorem} nested \end{theorem} outer \end{theorem} rest`
	content, end := extractEnvironment(text, 0, "theorem")

	if !strings.Contains(content, "nested") || !strings.Contains(content, "outer") {
		t.Errorf("nested environment not balanced, content = %q", content)
	}
	if strings.Contains(content, "rest") {
		t.Errorf("content ran past the matching close: %q", content)
	}
	if want := strings.LastIndex(text, `\end{theorem}`) + len(`\end{theorem}`); end != want {
		t.Errorf("end = %d, want %d", end, want)
	}
}

func TestExtractEnvironmentStarredAndCase(t *testing.T) {
	text := `body \END{Theorem*} after`
	content, _ := extractEnvironment(text, 0, "theorem")
	if strings.TrimSpace(content) != "body" {
		t.Errorf("starred or mixed-case close not honored, content = %q", content)
	}
}

func TestExtractEnvironmentMissingClose(t *testing.T) {
	text := "content with no close marker"
	content, end := extractEnvironment(text, 0, "lemma")
	if content != text {
		t.Errorf("content = %q, want whole remainder", content)
	}
	if end != len(text) {
		t.Errorf("end = %d, want %d", end, len(text))
	}
}

// --- proof association ---

func TestProofAdjacency(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantProof bool
	}{
		{
			name:      "whitespace only between",
			text:      "\\begin{theorem}$a+b$ holds\\end{theorem}\n\n\\begin{proof}trivial by inspection\\end{proof}",
			wantProof: true,
		},
		{
			name:      "intervening text blocks association",
			text:      "\\begin{theorem}$a+b$ holds\\end{theorem}\nSome prose.\n\\begin{proof}trivial by inspection\\end{proof}",
			wantProof: false,
		},
		{
			name:      "spanish proof synonym",
			text:      "\\begin{theorem}$a+b$ holds\\end{theorem}\n\\begin{demostracion}se sigue directamente\\end{demostracion}",
			wantProof: true,
		},
		{
			name:      "synonyms interchange in nesting",
			text:      "\\begin{theorem}$a+b$ holds\\end{theorem}\n\\begin{proof}outer \\begin{dem}inner\\end{dem} done\\end{demostracion}",
			wantProof: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.text, types.ParserConfig{})
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			if blocks[0].HasProof() != tt.wantProof {
				t.Errorf("HasProof = %v, want %v (proof=%q)", blocks[0].HasProof(), tt.wantProof, blocks[0].Proof)
			}
		})
	}
}

func TestProofMissingCloseTruncates(t *testing.T) {
	text := "\\begin{lemma}$x^2 \\ge 0$\\end{lemma}\n\\begin{proof}square of a real"
	blocks := Parse(text, types.ParserConfig{})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Proof != "square of a real" {
		t.Errorf("proof = %q, want truncated remainder", blocks[0].Proof)
	}
}

// --- minimum content filtering ---

func TestMinimumContentFiltering(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantBlocks int
	}{
		{
			name:       "trivial statement dropped",
			text:       `\begin{theorem}ab\end{theorem}`,
			wantBlocks: 0,
		},
		{
			name:       "boundary statement kept",
			text:       `\begin{theorem}abc\end{theorem}`,
			wantBlocks: 1,
		},
		{
			name:       "dropped block does not hide the next one",
			text:       "\\begin{theorem}x\\end{theorem}\n\\begin{lemma}real content here\\end{lemma}",
			wantBlocks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.text, types.ParserConfig{})
			if len(blocks) != tt.wantBlocks {
				t.Errorf("got %d blocks, want %d", len(blocks), tt.wantBlocks)
			}
		})
	}
}

func TestTrivialProofOmitted(t *testing.T) {
	text := "\\begin{theorem}real statement\\end{theorem}\n\\begin{proof}ok\\end{proof}"
	blocks := Parse(text, types.ParserConfig{})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].HasProof() {
		t.Errorf("trivial proof should be omitted, got %q", blocks[0].Proof)
	}
}

// --- comment invariance ---

func TestCommentInvariance(t *testing.T) {
	base := "\\begin{theorem}$a = b$ indeed\\end{theorem}\n\n\\begin{proof}by symmetry of equality\\end{proof}\n"
	commented := "% preamble note without markers\n" + base + "% trailing note\n"

	want := Parse(base, types.ParserConfig{})
	got := Parse(commented, types.ParserConfig{})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("comments changed extraction:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestCommentedEnvironmentIgnored(t *testing.T) {
	text := "% \\begin{theorem}hidden\\end{theorem}\nno environments here"
	if blocks := Parse(text, types.ParserConfig{}); len(blocks) != 0 {
		t.Errorf("commented-out environment extracted: %+v", blocks)
	}
}

// --- references across content and proof ---

func TestReferencesMergedContentFirst(t *testing.T) {
	text := "\\begin{theorem}uses \\ref{a} and \\ref{b}\\end{theorem}\n" +
		"\\begin{proof}uses \\ref{b} then \\ref{c}\\end{proof}"
	blocks := Parse(text, types.ParserConfig{})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(blocks[0].References, want) {
		t.Errorf("references = %v, want %v", blocks[0].References, want)
	}
}

// --- determinism ---

func TestParseDeterministic(t *testing.T) {
	first := Parse(sampleDoc, DefaultConfig())
	second := Parse(sampleDoc, DefaultConfig())
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated extraction of the same document differed")
	}
}

// --- end-to-end scenario ---

func TestParseSampleDocument(t *testing.T) {
	blocks := Parse(sampleDoc, DefaultConfig())
	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4", len(blocks))
	}

	tests := []struct {
		kind      types.StatementKind
		title     string
		label     string
		wantProof bool
	}{
		{types.KindDefinition, "Grupo", "def:grupo", false},
		{types.KindTheorem, "Teorema de Lagrange", "thm:lagrange", true},
		{types.KindLemma, "", "", false},
		{types.KindProposition, "Unicidad del Neutro", "", true},
	}

	for i, tt := range tests {
		b := blocks[i]
		if b.Kind != tt.kind {
			t.Errorf("block %d kind = %s, want %s", i, b.Kind, tt.kind)
		}
		if b.Title != tt.title {
			t.Errorf("block %d title = %q, want %q", i, b.Title, tt.title)
		}
		if b.Label != tt.label {
			t.Errorf("block %d label = %q, want %q", i, b.Label, tt.label)
		}
		if b.HasProof() != tt.wantProof {
			t.Errorf("block %d HasProof = %v, want %v", i, b.HasProof(), tt.wantProof)
		}
	}

	if got := blocks[1].References; !reflect.DeepEqual(got, []string{"def:grupo"}) {
		t.Errorf("theorem references = %v, want [def:grupo]", got)
	}
	if got := blocks[3].References; !reflect.DeepEqual(got, []string{"thm:lagrange"}) {
		t.Errorf("proposition references = %v, want [thm:lagrange]", got)
	}
	if strings.Contains(blocks[0].Content, `\textbf`) {
		t.Errorf("formatting command survived normalization: %q", blocks[0].Content)
	}
}

// --- custom environments ---

func TestCustomEnvironmentRoundTrip(t *testing.T) {
	text := `\newtheorem{teorema-principal}{Teorema Principal}

\begin{teorema-principal}
El resultado central: $f$ es continua.
\end{teorema-principal}`

	blocks := Parse(text, DefaultConfig())
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != types.KindTheorem {
		t.Errorf("kind = %s, want theorem", blocks[0].Kind)
	}
}

func TestCustomEnvironmentUnclassified(t *testing.T) {
	text := `\newtheorem{axiom}{Axiom}

\begin{axiom}
For every set there is a choice function.
\end{axiom}`

	blocks := Parse(text, DefaultConfig())
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != types.StatementKind("axiom") {
		t.Errorf("kind = %s, want axiom (unclassified)", blocks[0].Kind)
	}
	if blocks[0].Kind.Canonical() {
		t.Error("unclassified kind reported as canonical")
	}
}

func TestAutoDetectDisabled(t *testing.T) {
	text := `\newtheorem{observacion}{Observación}

\begin{observacion}
Una observación con contenido suficiente.
\end{observacion}`

	if blocks := Parse(text, types.ParserConfig{AutoDetect: false}); len(blocks) != 0 {
		t.Errorf("custom environment extracted with auto-detect off: %+v", blocks)
	}
	if blocks := Parse(text, DefaultConfig()); len(blocks) != 1 {
		t.Errorf("custom environment missed with auto-detect on: got %d blocks", len(blocks))
	}
}

func TestParseEmptyDocument(t *testing.T) {
	if blocks := Parse("", DefaultConfig()); len(blocks) != 0 {
		t.Errorf("empty document produced %d blocks", len(blocks))
	}
	if blocks := Parse("plain prose, no markup", DefaultConfig()); len(blocks) != 0 {
		t.Errorf("markup-free document produced %d blocks", len(blocks))
	}
}

// --- ParseFile ---

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "doc.tex")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	blocks, err := ParseFile(path, DefaultConfig())
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(blocks) != 4 {
		t.Errorf("got %d blocks, want 4", len(blocks))
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.tex"), DefaultConfig()); err == nil {
		t.Error("missing file did not error")
	}

	txtPath := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(txtPath, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(txtPath, DefaultConfig()); err == nil {
		t.Error("non-.tex file did not error")
	}
}

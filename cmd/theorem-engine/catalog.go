// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/theorem-engine/internal/catalog"
	"github.com/pdiddy/theorem-engine/internal/texparse"
	"github.com/pdiddy/theorem-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the statement catalog (store, retrieve, export)",
	Long: `Catalog manages a local SQLite database of extracted statements. Use
subcommands to ingest parsed documents, query them with full-text search
and structured filters, or export the catalog.`,
}

// --- store subcommand ---

var catalogStoreCmd = &cobra.Command{
	Use:   "store <file.tex>",
	Short: "Parse a LaTeX document and ingest its statements",
	Long: `Store parses a .tex file and ingests the extracted statement blocks
into the catalog, replacing any earlier ingestion of the same document.
The document ID is the file name without its extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogStore,
}

func runCatalogStore(cmd *cobra.Command, args []string) error {
	path := args[0]

	blocks, err := texparse.ParseFile(path, parserConfigFromFlags(cmd))
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	docID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return store.Ingest(context.Background(), docID, path, blocks, os.Stdout)
}

// --- retrieve subcommand ---

var catalogRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query the catalog with full-text search and filters",
	Long: `Retrieve searches stored statements using FTS5 full-text search over
content and proofs, structured filters (kind, label, document, proved),
or a combination of both.`,
	RunE: runCatalogRetrieve,
}

func runCatalogRetrieve(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --kind, --label, --doc, or --proved")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(results, jsonOutput)
}

func formatRetrieveOutput(results []catalog.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-20s  %-50s  %-20s  %s\n",
		"Rank", "Kind", "Label", "Content", "Doc", "Proof")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 118))

	for i, r := range results {
		content := strings.ReplaceAll(r.Content, "\n", " ")
		if len(content) > 50 {
			content = content[:47] + "..."
		}
		label := r.Label
		if len(label) > 20 {
			label = label[:17] + "..."
		}
		doc := r.DocID
		if len(doc) > 20 {
			doc = doc[:17] + "..."
		}
		proof := "-"
		if r.HasProof() {
			proof = "yes"
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-12s  %-20s  %-50s  %-20s  %s\n",
			i+1, r.Kind, label, content, doc, proof)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the full catalog (or a filtered subset) to
catalog/index/export.yaml or export.json. Supports the same filter
flags as retrieve for partial exports.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to catalog/index/export.yaml")
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to catalog/index/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	catalogDir, _ := cmd.Flags().GetString("catalog-dir")
	if catalogDir == "" {
		catalogDir = "catalog"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.CatalogConfig{
		CatalogDir: catalogDir,
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	kind, _ := cmd.Flags().GetString("kind")
	label, _ := cmd.Flags().GetString("label")
	docID, _ := cmd.Flags().GetString("doc")
	proved, _ := cmd.Flags().GetBool("proved")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		Kind:       types.StatementKind(kind),
		Label:      label,
		DocID:      docID,
		ProvedOnly: proved,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", "catalog", "base directory for the catalog (contains index/)")
	catalogCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Store flags (parser settings shared with parse).
	catalogStoreCmd.Flags().Bool("no-auto-detect", false, "disable \\newtheorem auto-detection")
	catalogStoreCmd.Flags().StringArray("env", nil, "extra environment name to recognize (repeatable)")

	// Retrieve flags.
	catalogRetrieveCmd.Flags().String("query", "", "full-text search query")
	catalogRetrieveCmd.Flags().String("kind", "", "filter by kind: definition, theorem, lemma, proposition, corollary")
	catalogRetrieveCmd.Flags().String("label", "", "filter by \\label identifier")
	catalogRetrieveCmd.Flags().String("doc", "", "filter by document ID")
	catalogRetrieveCmd.Flags().Bool("proved", false, "only statements with a stored proof")
	catalogRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	catalogExportCmd.Flags().String("kind", "", "filter by kind for partial export")
	catalogExportCmd.Flags().String("label", "", "filter by \\label for partial export")
	catalogExportCmd.Flags().String("doc", "", "filter by document ID for partial export")
	catalogExportCmd.Flags().Bool("proved", false, "only statements with a stored proof")
	catalogExportCmd.Flags().Int("limit", 0, "maximum statements to export (0 = all)")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogStoreCmd)
	catalogCmd.AddCommand(catalogRetrieveCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}

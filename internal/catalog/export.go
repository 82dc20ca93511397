// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes the catalog to catalog/index/export.yaml. It
// supports the same filters as Retrieve for partial exports.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	results, err := s.exportResults(ctx, opts)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return s.writeExport("export.yaml", data)
}

// ExportJSON writes the catalog to catalog/index/export.json. It
// supports the same filters as Retrieve for partial exports.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	results, err := s.exportResults(ctx, opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return s.writeExport("export.json", data)
}

func (s *Store) exportResults(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	results, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return results, nil
}

func (s *Store) writeExport(name string, data []byte) error {
	path := filepath.Join(s.catalogDir, indexDir, name)
	return os.WriteFile(path, data, 0o644)
}

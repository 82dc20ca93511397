// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/theorem-engine/pkg/types"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is an FTS5 full-text search string over content and proof.
	Query string

	// Kind filters by statement kind.
	Kind types.StatementKind

	// Label filters by exact \label identifier.
	Label string

	// DocID filters by source document.
	DocID string

	// ProvedOnly restricts results to statements with a stored proof.
	ProvedOnly bool

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Kind == "" && q.Label == "" && q.DocID == "" && !q.ProvedOnly
}

// QueryResult is a stored statement with its provenance.
type QueryResult struct {
	types.StatementBlock `yaml:",inline"`

	// ID is the stable statement identifier.
	ID string `json:"id" yaml:"id"`

	// DocID identifies the source document.
	DocID string `json:"doc_id" yaml:"doc_id"`

	// Position is the statement's zero-based extraction position within
	// its document.
	Position int `json:"position" yaml:"position"`
}

// Retrieve queries the catalog with optional full-text search and
// structured filters. Full-text queries rank by relevance; structured
// queries sort by document and extraction position.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT st.id, st.doc_id, st.position, st.kind, st.label, st.title,
				st.content, st.proof, st.refs
			FROM statements_fts
			JOIN statements st ON st.rowid = statements_fts.rowid
			WHERE statements_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT st.id, st.doc_id, st.position, st.kind, st.label, st.title,
				st.content, st.proof, st.refs
			FROM statements st
			WHERE 1=1`)
	}

	if opts.Kind != "" {
		qb.WriteString(` AND st.kind = ?`)
		args = append(args, string(opts.Kind))
	}
	if opts.Label != "" {
		qb.WriteString(` AND st.label = ?`)
		args = append(args, opts.Label)
	}
	if opts.DocID != "" {
		qb.WriteString(` AND st.doc_id = ?`)
		args = append(args, opts.DocID)
	}
	if opts.ProvedOnly {
		qb.WriteString(` AND st.proof != ''`)
	}

	if useFTS {
		qb.WriteString(` ORDER BY statements_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY st.doc_id, st.position`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying statements: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			r        QueryResult
			kind     string
			refsJSON string
		)
		if err := rows.Scan(&r.ID, &r.DocID, &r.Position, &kind, &r.Label, &r.Title,
			&r.Content, &r.Proof, &refsJSON); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.Kind = types.StatementKind(kind)
		if refsJSON != "" && refsJSON != "null" {
			if err := json.Unmarshal([]byte(refsJSON), &r.References); err != nil {
				return nil, fmt.Errorf("decoding references for %s: %w", r.ID, err)
			}
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

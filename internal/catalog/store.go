// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists extracted statement blocks in a SQLite
// database with full-text retrieval, so formalization tooling can query
// statements across many source documents.
package catalog

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/theorem-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "statements.db"
)

// Store manages the statement catalog SQLite database.
type Store struct {
	db         *sql.DB
	catalogDir string
	maxResults int
}

// NewStore opens or creates the catalog database at
// catalogDir/index/statements.db, creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.CatalogDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		catalogDir: cfg.CatalogDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			source_path TEXT,
			parsed_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS statements (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			doc_id TEXT NOT NULL REFERENCES documents(id),
			position INTEGER NOT NULL,
			kind TEXT NOT NULL,
			label TEXT,
			title TEXT,
			content TEXT NOT NULL,
			proof TEXT,
			refs TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_statements_doc_id ON statements(doc_id)`,
		`CREATE INDEX IF NOT EXISTS idx_statements_kind ON statements(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_statements_label ON statements(label)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table over content and proof, with sync triggers.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='statements_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE statements_fts USING fts5(content, proof, content=statements, content_rowid=rowid)`,
			`CREATE TRIGGER statements_ai AFTER INSERT ON statements BEGIN
				INSERT INTO statements_fts(rowid, content, proof) VALUES (new.rowid, new.content, new.proof);
			END`,
			`CREATE TRIGGER statements_ad AFTER DELETE ON statements BEGIN
				INSERT INTO statements_fts(statements_fts, rowid, content, proof) VALUES('delete', old.rowid, old.content, old.proof);
			END`,
			`CREATE TRIGGER statements_au AFTER UPDATE ON statements BEGIN
				INSERT INTO statements_fts(statements_fts, rowid, content, proof) VALUES('delete', old.rowid, old.content, old.proof);
				INSERT INTO statements_fts(rowid, content, proof) VALUES (new.rowid, new.content, new.proof);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Ingest stores the statement blocks extracted from one document,
// replacing any earlier ingestion of the same document ID. Progress is
// written line by line to w.
func (s *Store) Ingest(ctx context.Context, docID, sourcePath string, blocks []types.StatementBlock, w io.Writer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM statements WHERE doc_id = ?`, docID); err != nil {
		return fmt.Errorf("deleting old statements: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, source_path, parsed_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET source_path=excluded.source_path, parsed_at=excluded.parsed_at`,
		docID, sourcePath, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO statements (id, doc_id, position, kind, label, title, content, proof, refs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range blocks {
		refsJSON, _ := json.Marshal(b.References)
		_, err := stmt.ExecContext(ctx,
			stableID(docID, i, b.Content), docID, i,
			string(b.Kind), b.Label, b.Title, b.Content, b.Proof, string(refsJSON),
		)
		if err != nil {
			return fmt.Errorf("inserting statement %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing ingestion: %w", err)
	}

	fmt.Fprintf(w, "stored %s (%d statements)\n", docID, len(blocks))
	return nil
}

// stableID generates a deterministic statement ID from document ID,
// position, and content: the first 12 hex characters of their SHA-256.
func stableID(docID string, position int, content string) string {
	h := sha256.New()
	h.Write([]byte(docID))
	fmt.Fprintf(h, "#%d#", position)
	h.Write([]byte(content))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}

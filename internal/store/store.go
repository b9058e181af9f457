// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/strophe/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for analysis history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			source TEXT NOT NULL,
			line_count INTEGER NOT NULL,
			word_count INTEGER NOT NULL,
			syllable_total INTEGER NOT NULL,
			rhyme_scheme TEXT NOT NULL,
			polarity REAL NOT NULL,
			positive INTEGER NOT NULL,
			negative INTEGER NOT NULL,
			alliteration_count INTEGER NOT NULL,
			assonance_count INTEGER NOT NULL,
			metaphor_count INTEGER NOT NULL,
			poem TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAnalysis stores one analysis record and returns its id.
func (s *Store) InsertAnalysis(ctx context.Context, rec model.Record) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (created_at, source, line_count, word_count, syllable_total, rhyme_scheme, polarity, positive, negative, alliteration_count, assonance_count, metaphor_count, poem)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.Source,
		rec.LineCount,
		rec.WordCount,
		rec.SyllableTotal,
		rec.RhymeScheme,
		rec.Polarity,
		rec.Positive,
		rec.Negative,
		rec.AlliterationCount,
		rec.AssonanceCount,
		rec.MetaphorCount,
		rec.Poem,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAnalyses returns history records filtered by the history config,
// ordered oldest first. The Last limit is applied by the caller.
func (s *Store) ListAnalyses(ctx context.Context, cfg model.HistoryConfig) ([]model.Record, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, cfg.Source)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, created_at, source, line_count, word_count, syllable_total, rhyme_scheme, polarity, positive, negative, alliteration_count, assonance_count, metaphor_count, poem
		FROM analyses
		WHERE %s
		ORDER BY created_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.Record
	for rows.Next() {
		var rec model.Record
		var createdAt string
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Source, &rec.LineCount, &rec.WordCount, &rec.SyllableTotal, &rec.RhymeScheme, &rec.Polarity, &rec.Positive, &rec.Negative, &rec.AlliterationCount, &rec.AssonanceCount, &rec.MetaphorCount, &rec.Poem); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

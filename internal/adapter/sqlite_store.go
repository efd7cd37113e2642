package adapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver

	"github.com/mouse-blink/reprise/internal/logging"
	m "github.com/mouse-blink/reprise/internal/model"
)

// DefaultRepriseCount is how many motifs one reprisal serves.
const DefaultRepriseCount = 5

// Fixed-width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS citations (
	uuid       TEXT PRIMARY KEY,
	title      TEXT NOT NULL UNIQUE,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS motifs (
	uuid       TEXT PRIMARY KEY,
	content    TEXT NOT NULL,
	citation   TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS cloze_deletions (
	uuid        TEXT PRIMARY KEY,
	motif_uuid  TEXT NOT NULL REFERENCES motifs(uuid) ON DELETE CASCADE,
	mask_tuples TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS cloze_deletions_motif ON cloze_deletions(motif_uuid);
CREATE TABLE IF NOT EXISTS reprisals (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	motif_uuid TEXT NOT NULL REFERENCES motifs(uuid) ON DELETE CASCADE,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS reprisals_motif ON reprisals(motif_uuid);
`

// SQLiteStore implements Store on a local SQLite file, the offline "vault".
type SQLiteStore struct {
	db           *sql.DB
	repriseCount int
	now          func() time.Time
}

// NewSQLiteStore opens (creating if needed) the database at path and migrates it.
// repriseCount <= 0 falls back to DefaultRepriseCount.
func NewSQLiteStore(ctx context.Context, path string, repriseCount int) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if repriseCount <= 0 {
		repriseCount = DefaultRepriseCount
	}

	return &SQLiteStore{
		db:           db,
		repriseCount: repriseCount,
		now:          time.Now,
	}, nil
}

// ListMotifs implements Store.
func (s *SQLiteStore) ListMotifs(ctx context.Context, page, pageSize int) (_ m.MotifPage, err error) {
	defer s.observe(ctx, "SELECT", "motifs", time.Now(), &err)

	if page < 1 {
		page = 1
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM motifs`).Scan(&total); err != nil {
		return m.MotifPage{}, fmt.Errorf("failed to count motifs: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT uuid, content, citation, created_at FROM motifs
		 ORDER BY created_at, rowid LIMIT ? OFFSET ?`,
		pageSize, (page-1)*pageSize)
	if err != nil {
		return m.MotifPage{}, fmt.Errorf("failed to list motifs: %w", err)
	}

	motifs, err := scanMotifs(rows)
	if err != nil {
		return m.MotifPage{}, err
	}

	if err := s.attachDeletions(ctx, motifs); err != nil {
		return m.MotifPage{}, err
	}

	return m.MotifPage{Motifs: motifs, TotalCount: total}, nil
}

// GetMotif implements Store.
func (s *SQLiteStore) GetMotif(ctx context.Context, id string) (_ m.Motif, err error) {
	defer s.observe(ctx, "SELECT", "motifs", time.Now(), &err)

	var motif m.Motif

	err = s.db.QueryRowContext(ctx,
		`SELECT uuid, content, citation, created_at FROM motifs WHERE uuid = ?`, id).
		Scan(&motif.UUID, &motif.Content, &motif.Citation, &motif.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return m.Motif{}, fmt.Errorf("motif %s: %w", id, ErrNotFound)
	}

	if err != nil {
		return m.Motif{}, fmt.Errorf("failed to load motif %s: %w", id, err)
	}

	motifs := []m.Motif{motif}
	if err := s.attachDeletions(ctx, motifs); err != nil {
		return m.Motif{}, err
	}

	return motifs[0], nil
}

// CreateMotif implements Store. A citation title not seen before is added to
// the citations table as well.
func (s *SQLiteStore) CreateMotif(ctx context.Context, content, citation string) (_ m.Motif, err error) {
	defer s.observe(ctx, "INSERT", "motifs", time.Now(), &err)

	motif := m.Motif{
		UUID:      uuid.NewString(),
		Content:   content,
		Citation:  citation,
		CreatedAt: s.timestamp(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return m.Motif{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if citation != "" {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO citations (uuid, title, created_at) VALUES (?, ?, ?)`,
			uuid.NewString(), citation, motif.CreatedAt); err != nil {
			return m.Motif{}, fmt.Errorf("failed to add citation: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO motifs (uuid, content, citation, created_at) VALUES (?, ?, ?, ?)`,
		motif.UUID, motif.Content, motif.Citation, motif.CreatedAt); err != nil {
		return m.Motif{}, fmt.Errorf("failed to add motif: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return m.Motif{}, fmt.Errorf("failed to commit motif: %w", err)
	}

	return motif, nil
}

// UpdateMotif implements Store. An empty citation keeps the stored one; a new
// title is added to the citations table as in CreateMotif.
func (s *SQLiteStore) UpdateMotif(ctx context.Context, id, content, citation string) (_ m.Motif, err error) {
	defer s.observe(ctx, "UPDATE", "motifs", time.Now(), &err)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return m.Motif{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if citation != "" {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO citations (uuid, title, created_at) VALUES (?, ?, ?)`,
			uuid.NewString(), citation, s.timestamp()); err != nil {
			return m.Motif{}, fmt.Errorf("failed to add citation: %w", err)
		}
	}

	var motif m.Motif

	err = tx.QueryRowContext(ctx,
		`UPDATE motifs SET content = ?, citation = CASE WHEN ? = '' THEN citation ELSE ? END
		 WHERE uuid = ? RETURNING uuid, content, citation, created_at`,
		content, citation, citation, id).
		Scan(&motif.UUID, &motif.Content, &motif.Citation, &motif.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return m.Motif{}, fmt.Errorf("motif %s: %w", id, ErrNotFound)
	}

	if err != nil {
		return m.Motif{}, fmt.Errorf("failed to update motif %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return m.Motif{}, fmt.Errorf("failed to commit motif: %w", err)
	}

	motifs := []m.Motif{motif}
	if err := s.attachDeletions(ctx, motifs); err != nil {
		return m.Motif{}, err
	}

	return motifs[0], nil
}

// DeleteMotif implements Store. Its cloze deletions and reprisal history go
// with it.
func (s *SQLiteStore) DeleteMotif(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "DELETE", "motifs", time.Now(), &err)

	res, err := s.db.ExecContext(ctx, `DELETE FROM motifs WHERE uuid = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete motif %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete motif %s: %w", id, err)
	}

	if affected == 0 {
		return fmt.Errorf("motif %s: %w", id, ErrNotFound)
	}

	return nil
}

// ListCitations implements Store.
func (s *SQLiteStore) ListCitations(ctx context.Context) (_ []m.Citation, err error) {
	defer s.observe(ctx, "SELECT", "citations", time.Now(), &err)

	rows, err := s.db.QueryContext(ctx, `SELECT uuid, title, created_at FROM citations ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list citations: %w", err)
	}
	defer rows.Close()

	citations := []m.Citation{}

	for rows.Next() {
		var c m.Citation
		if err := rows.Scan(&c.UUID, &c.Title, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan citation: %w", err)
		}

		citations = append(citations, c)
	}

	return citations, rows.Err()
}

// AddCitation implements Store. Adding an existing title returns the stored citation.
func (s *SQLiteStore) AddCitation(ctx context.Context, title string) (_ m.Citation, err error) {
	defer s.observe(ctx, "INSERT", "citations", time.Now(), &err)

	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO citations (uuid, title, created_at) VALUES (?, ?, ?)`,
		uuid.NewString(), title, s.timestamp()); err != nil {
		return m.Citation{}, fmt.Errorf("failed to add citation: %w", err)
	}

	var c m.Citation
	if err := s.db.QueryRowContext(ctx,
		`SELECT uuid, title, created_at FROM citations WHERE title = ?`, title).
		Scan(&c.UUID, &c.Title, &c.CreatedAt); err != nil {
		return m.Citation{}, fmt.Errorf("failed to load citation: %w", err)
	}

	return c, nil
}

// CreateClozeDeletion implements Store.
func (s *SQLiteStore) CreateClozeDeletion(ctx context.Context, motifUUID string, set m.IntervalSet) (_ m.ClozeDeletion, err error) {
	defer s.observe(ctx, "INSERT", "cloze_deletions", time.Now(), &err)

	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM motifs WHERE uuid = ?)`, motifUUID).Scan(&exists); err != nil {
		return m.ClozeDeletion{}, fmt.Errorf("failed to look up motif %s: %w", motifUUID, err)
	}

	if !exists {
		return m.ClozeDeletion{}, fmt.Errorf("motif %s: %w", motifUUID, ErrNotFound)
	}

	tuples, err := json.Marshal(set)
	if err != nil {
		return m.ClozeDeletion{}, fmt.Errorf("failed to encode mask tuples: %w", err)
	}

	cd := m.ClozeDeletion{UUID: uuid.NewString(), MotifUUID: motifUUID, MaskTuples: set.Clone()}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO cloze_deletions (uuid, motif_uuid, mask_tuples) VALUES (?, ?, ?)`,
		cd.UUID, cd.MotifUUID, string(tuples)); err != nil {
		return m.ClozeDeletion{}, fmt.Errorf("failed to add cloze deletion: %w", err)
	}

	return cd, nil
}

// UpdateClozeDeletion implements Store.
func (s *SQLiteStore) UpdateClozeDeletion(ctx context.Context, id string, set m.IntervalSet) (_ m.ClozeDeletion, err error) {
	defer s.observe(ctx, "UPDATE", "cloze_deletions", time.Now(), &err)

	tuples, err := json.Marshal(set)
	if err != nil {
		return m.ClozeDeletion{}, fmt.Errorf("failed to encode mask tuples: %w", err)
	}

	var motifUUID string

	err = s.db.QueryRowContext(ctx,
		`UPDATE cloze_deletions SET mask_tuples = ? WHERE uuid = ? RETURNING motif_uuid`,
		string(tuples), id).Scan(&motifUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return m.ClozeDeletion{}, fmt.Errorf("cloze deletion %s: %w", id, ErrNotFound)
	}

	if err != nil {
		return m.ClozeDeletion{}, fmt.Errorf("failed to update cloze deletion %s: %w", id, err)
	}

	return m.ClozeDeletion{UUID: id, MotifUUID: motifUUID, MaskTuples: set.Clone()}, nil
}

// DeleteClozeDeletion implements Store.
func (s *SQLiteStore) DeleteClozeDeletion(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "DELETE", "cloze_deletions", time.Now(), &err)

	res, err := s.db.ExecContext(ctx, `DELETE FROM cloze_deletions WHERE uuid = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cloze deletion %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete cloze deletion %s: %w", id, err)
	}

	if affected == 0 {
		return fmt.Errorf("cloze deletion %s: %w", id, ErrNotFound)
	}

	return nil
}

// Reprise implements Store: the least reprised motifs are served first, oldest
// first among equals, and each one served gets a reprisal row.
func (s *SQLiteStore) Reprise(ctx context.Context) (_ []m.Motif, err error) {
	defer s.observe(ctx, "SELECT", "reprisals", time.Now(), &err)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx,
		`SELECT mo.uuid, mo.content, mo.citation, mo.created_at
		 FROM motifs mo LEFT JOIN reprisals r ON r.motif_uuid = mo.uuid
		 GROUP BY mo.uuid
		 ORDER BY COUNT(r.id), mo.created_at, mo.rowid
		 LIMIT ?`, s.repriseCount)
	if err != nil {
		return nil, fmt.Errorf("failed to select motifs to reprise: %w", err)
	}

	motifs, err := scanMotifs(rows)
	if err != nil {
		return nil, err
	}

	stamp := s.timestamp()
	for _, motif := range motifs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO reprisals (motif_uuid, created_at) VALUES (?, ?)`, motif.UUID, stamp); err != nil {
			return nil, fmt.Errorf("failed to record reprisal: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reprisals: %w", err)
	}

	if err := s.attachDeletions(ctx, motifs); err != nil {
		return nil, err
	}

	return motifs, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) attachDeletions(ctx context.Context, motifs []m.Motif) error {
	for i := range motifs {
		deletions, err := s.loadDeletions(ctx, motifs[i].UUID)
		if err != nil {
			return err
		}

		motifs[i].ClozeDeletions = deletions
	}

	return nil
}

func (s *SQLiteStore) loadDeletions(ctx context.Context, motifUUID string) ([]m.ClozeDeletion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT uuid, mask_tuples FROM cloze_deletions WHERE motif_uuid = ? ORDER BY rowid`, motifUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cloze deletions for %s: %w", motifUUID, err)
	}
	defer rows.Close()

	var deletions []m.ClozeDeletion

	for rows.Next() {
		var (
			cd     m.ClozeDeletion
			tuples string
		)

		if err := rows.Scan(&cd.UUID, &tuples); err != nil {
			return nil, fmt.Errorf("failed to scan cloze deletion: %w", err)
		}

		if err := json.Unmarshal([]byte(tuples), &cd.MaskTuples); err != nil {
			return nil, fmt.Errorf("failed to decode mask tuples of %s: %w", cd.UUID, err)
		}

		cd.MotifUUID = motifUUID
		deletions = append(deletions, cd)
	}

	return deletions, rows.Err()
}

func scanMotifs(rows *sql.Rows) ([]m.Motif, error) {
	defer rows.Close()

	motifs := []m.Motif{}

	for rows.Next() {
		var motif m.Motif
		if err := rows.Scan(&motif.UUID, &motif.Content, &motif.Citation, &motif.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan motif: %w", err)
		}

		motifs = append(motifs, motif)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read motifs: %w", err)
	}

	return motifs, nil
}

func (s *SQLiteStore) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

func (s *SQLiteStore) observe(ctx context.Context, method, target string, started time.Time, err *error) {
	logging.StoreRequest(ctx, "sqlite", method, target, time.Since(started), *err)
}

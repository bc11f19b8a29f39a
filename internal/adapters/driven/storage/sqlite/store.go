package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docrec/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
)

// DatabaseName is the file NewStore creates inside the data directory.
const DatabaseName = "index.db"

// Store is a unified SQLite-based storage that provides access to
// all store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.docrec/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docrec", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return Open(filepath.Join(dataDir, DatabaseName))
}

// Open opens or creates the database file at dbPath.
func Open(dbPath string) (*Store, error) {
	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
}

// TextStore returns a TextStore interface backed by this store.
func (s *Store) TextStore() driven.TextStore {
	return &textStore{store: s}
}

// MatrixStore returns a MatrixStore interface backed by this store.
func (s *Store) MatrixStore() driven.MatrixStore {
	return &matrixStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// version returns the highest applied migration.
func (s *Store) version() (int, error) {
	var v int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// SaveDocuments replaces the document table in a single transaction.
func (s *documentStore) SaveDocuments(ctx context.Context, docs []domain.Document) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("clearing documents: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (position, id, type, text, file_size, file_path)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, doc := range docs {
		if _, err := stmt.ExecContext(ctx, i, doc.ID, doc.Type, doc.Text, doc.FileSize, doc.FilePath); err != nil {
			return fmt.Errorf("inserting document %s: %w", doc.ID, err)
		}
	}

	return tx.Commit()
}

// Load returns the stored documents in table order.
func (s *documentStore) Load(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, type, text, file_size, file_path
		FROM documents ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying documents: %v", domain.ErrDataLoad, err)
	}
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.Type, &doc.Text, &doc.FileSize, &doc.FilePath); err != nil {
			return nil, fmt.Errorf("%w: scanning document: %v", domain.ErrDataLoad, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataLoad, err)
	}
	return docs, nil
}

// ==================== Text Store ====================

// textStore implements driven.TextStore.
type textStore struct {
	store *Store
}

var _ driven.TextStore = (*textStore)(nil)

// SaveTexts replaces the snippet texts in a single transaction.
func (s *textStore) SaveTexts(ctx context.Context, texts map[string]string) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM snippet_texts"); err != nil {
		return fmt.Errorf("clearing snippet texts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO snippet_texts (id, text) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for id, text := range texts {
		if _, err := stmt.ExecContext(ctx, id, text); err != nil {
			return fmt.Errorf("inserting snippet text %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// Text returns the snippet text for id.
func (s *textStore) Text(ctx context.Context, id string) (string, error) {
	var text string
	err := s.store.db.QueryRowContext(ctx, "SELECT text FROM snippet_texts WHERE id = ?", id).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: snippet text %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("querying snippet text: %w", err)
	}
	return text, nil
}

// ==================== Matrix Store ====================

// matrixStore implements driven.MatrixStore.
type matrixStore struct {
	store *Store
}

var _ driven.MatrixStore = (*matrixStore)(nil)

// SaveMatrix stores or replaces the matrix for fingerprint.
func (s *matrixStore) SaveMatrix(ctx context.Context, fingerprint string, m *domain.SimilarityMatrix) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO similarity_matrices (fingerprint, size, data, created_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(fingerprint) DO UPDATE SET
			size = excluded.size,
			data = excluded.data,
			created_at = excluded.created_at
	`, fingerprint, m.Size(), float64SliceToBytes(m.Values()))
	if err != nil {
		return fmt.Errorf("saving matrix: %w", err)
	}
	return nil
}

// LoadMatrix returns the matrix stored for fingerprint.
func (s *matrixStore) LoadMatrix(ctx context.Context, fingerprint string) (*domain.SimilarityMatrix, error) {
	var size int
	var data []byte
	err := s.store.db.QueryRowContext(ctx,
		"SELECT size, data FROM similarity_matrices WHERE fingerprint = ?", fingerprint,
	).Scan(&size, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: matrix %s", domain.ErrNotFound, fingerprint)
	}
	if err != nil {
		return nil, fmt.Errorf("querying matrix: %w", err)
	}

	values, err := bytesToFloat64Slice(data)
	if err != nil {
		return nil, err
	}
	return domain.SimilarityMatrixFromValues(size, values)
}

// ==================== Helper Functions ====================

func float64SliceToBytes(floats []float64) []byte {
	buf := make([]byte, len(floats)*8)
	for i, f := range floats {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func bytesToFloat64Slice(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("%w: matrix blob of %d bytes", domain.ErrDataLoad, len(data))
	}
	floats := make([]float64, len(data)/8)
	for i := range floats {
		floats[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return floats, nil
}

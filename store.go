package gearpress

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/gearpress/gearpress/views"
)

// ErrNotFound is returned when a requested post or account does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database and provides CRUD operations for posts,
// admin accounts, and uploaded-image metadata.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access, set a busy timeout
	// so writers wait instead of returning SQLITE_BUSY immediately, and tune
	// performance: synchronous=NORMAL is safe with WAL and avoids an fsync
	// per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    link TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS accounts (
    email TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS images (
    filename TEXT PRIMARY KEY,
    original_name TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL
);
`)
	return err
}

// ListPosts returns all posts ordered newest-first. Ties on the creation
// timestamp are broken by id so the order is deterministic.
func (s *Store) ListPosts() ([]views.Post, error) {
	rows, err := s.db.Query(`SELECT id, title, description, link, image_url, created_at FROM posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []views.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a single post by id, or ErrNotFound.
func (s *Store) GetPost(id string) (views.Post, error) {
	row := s.db.QueryRow(`SELECT id, title, description, link, image_url, created_at FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (views.Post, error) {
	var p views.Post
	var createdAt int64
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Link, &p.ImageURL, &createdAt); err != nil {
		return views.Post{}, err
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	return p, nil
}

// CreatePost inserts a new post, assigning its id and stamping the creation
// time from the server clock. The assigned id is returned.
func (s *Store) CreatePost(p views.Post) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := s.db.Exec(`INSERT INTO posts (id, title, description, link, image_url, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, p.Title, p.Description, p.Link, p.ImageURL, now.UnixNano())
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdatePost replaces a post's editable fields wholesale. The creation
// timestamp is never touched. Returns ErrNotFound for an unknown id.
func (s *Store) UpdatePost(id string, p views.Post) error {
	res, err := s.db.Exec(`UPDATE posts SET title = ?, description = ?, link = ?, image_url = ? WHERE id = ?`,
		p.Title, p.Description, p.Link, p.ImageURL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost removes a post by id. Returns ErrNotFound for an unknown id.
func (s *Store) DeletePost(id string) error {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertAccount creates or replaces an admin account credential.
func (s *Store) UpsertAccount(email, passwordHash string) error {
	_, err := s.db.Exec(`INSERT INTO accounts (email, password_hash, created_at) VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET password_hash = excluded.password_hash`,
		email, passwordHash, time.Now().UTC().UnixNano())
	return err
}

// GetAccountHash returns the stored password hash for an email, or ErrNotFound.
func (s *Store) GetAccountHash(email string) (string, error) {
	var hash string
	err := s.db.QueryRow(`SELECT password_hash FROM accounts WHERE email = ?`, email).Scan(&hash)
	if err != nil {
		return "", err
	}
	return hash, nil
}

// SaveImage records metadata for an uploaded image.
func (s *Store) SaveImage(img views.Image) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO images (filename, original_name, width, height, size, uploaded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		img.Filename, img.OriginalName, img.Width, img.Height, img.Size, img.UploadedAt)
	return err
}

// ListImages returns uploaded images, newest first.
func (s *Store) ListImages() ([]views.Image, error) {
	rows, err := s.db.Query(`SELECT filename, original_name, width, height, size, uploaded_at FROM images ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []views.Image
	for rows.Next() {
		var img views.Image
		if err := rows.Scan(&img.Filename, &img.OriginalName, &img.Width, &img.Height, &img.Size, &img.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// DeleteImage removes an uploaded image's metadata by filename.
func (s *Store) DeleteImage(filename string) error {
	_, err := s.db.Exec(`DELETE FROM images WHERE filename = ?`, filename)
	return err
}

package scribe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// Store wraps a GORM connection and provides CRUD operations for posts and
// contact messages.
type Store struct {
	db *gorm.DB
}

// NewStore opens the database at dsn and runs schema migrations. A dsn that
// looks like a Postgres connection string gets the Postgres driver; anything
// else is treated as a SQLite file path, with the parent directory created
// if needed.
func NewStore(dsn string) (*Store, error) {
	var dialector gorm.Dialector
	if isPostgresDSN(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
		}
		dialector = sqlite.Open(dsn)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&Post{}, &ContactMessage{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ListPosts returns every post in insertion order. Both the public index and
// the admin dashboard read from this.
func (s *Store) ListPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := s.db.WithContext(ctx).Order("id").Find(&posts).Error
	return posts, err
}

// GetPostBySlug returns the first post with the given slug, by ascending id.
// Slug uniqueness is not enforced; on duplicates the first match wins.
func (s *Store) GetPostBySlug(ctx context.Context, slug string) (Post, error) {
	var post Post
	err := s.db.WithContext(ctx).Where("slug = ?", slug).Order("id").First(&post).Error
	if err != nil {
		return Post{}, err
	}
	return post, nil
}

// GetPostByID returns a single post, or ErrNotFound.
func (s *Store) GetPostByID(ctx context.Context, id uint) (Post, error) {
	var post Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		return Post{}, err
	}
	return post, nil
}

// CreatePost inserts a new post. GORM assigns the id and creation timestamp;
// the stored record is written back into p.
func (s *Store) CreatePost(ctx context.Context, p *Post) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// UpdatePost overwrites every mutable field of the post with the given id.
// This is a full replace, not a merge: blank fields blank the stored values.
// The creation timestamp is preserved.
func (s *Store) UpdatePost(ctx context.Context, id uint, fields PostFields) error {
	post, err := s.GetPostByID(ctx, id)
	if err != nil {
		return err
	}
	post.Title = fields.Title
	post.Slug = fields.Slug
	post.Content = fields.Content
	post.Tagline = fields.Tagline
	post.ImageFile = fields.ImageFile
	return s.db.WithContext(ctx).Save(&post).Error
}

// DeletePost removes a post by id. Deleting an id that does not exist is a
// silent no-op.
func (s *Store) DeletePost(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&Post{}, id).Error
}

// CreateContact appends a contact message. Messages are write-only from the
// application's perspective.
func (s *Store) CreateContact(ctx context.Context, m *ContactMessage) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// IsNotFound reports whether err means the record was absent.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

package identity

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

//go:embed schema.sql
var schema string

// nowFunc stamps new users (override in tests for determinism).
var nowFunc = time.Now

// SQLiteStore persists users in SQLite.
type SQLiteStore struct {
	sqlDB *sql.DB
	cost  int
}

var _ Provider = (*SQLiteStore)(nil)

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithBcryptCost overrides the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(s *SQLiteStore) { s.cost = cost }
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) a SQLite user store and applies the schema.
func Open(path string, opts ...Option) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	s := &SQLiteStore{sqlDB: sqlDB, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *SQLiteStore) CreateUser(ctx context.Context, email, password string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	email = NormalizeEmail(email)
	if err := checkCredentials(email, password); err != nil {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: nowFunc().UTC().Truncate(time.Millisecond),
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		user.ID, user.Email, string(hash), toMillis(user.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUserByEmail looks a user up by normalized email.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (User, error) {
	user, _, err := s.lookup(ctx, `WHERE email = ?`, NormalizeEmail(email))
	return user, err
}

// GetUserByID looks a user up by ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (User, error) {
	user, _, err := s.lookup(ctx, `WHERE id = ?`, strings.TrimSpace(id))
	return user, err
}

// Authenticate verifies a password. Unknown emails and wrong passwords both return
// ErrInvalidCredentials.
func (s *SQLiteStore) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return User{}, ErrMissingCredentials
	}
	user, hash, err := s.lookup(ctx, `WHERE email = ?`, email)
	if errors.Is(err, ErrUserNotFound) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *SQLiteStore) lookup(ctx context.Context, where string, arg string) (User, string, error) {
	if err := ctx.Err(); err != nil {
		return User{}, "", err
	}
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users `+where, arg)

	var (
		user      User
		hash      string
		createdAt int64
	)
	if err := row.Scan(&user.ID, &user.Email, &hash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, "", ErrUserNotFound
		}
		return User{}, "", fmt.Errorf("get user: %w", err)
	}
	user.CreatedAt = fromMillis(createdAt)
	return user, hash, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "users.email")
}

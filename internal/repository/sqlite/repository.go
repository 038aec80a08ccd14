package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const (
	// DefaultUsersKey holds the serialized account map.
	DefaultUsersKey = "tm_users"
	// DefaultSessionKey holds the email of the logged-in account.
	DefaultSessionKey = "tm_logged"
	// MemoryPath opens a private in-memory database.
	MemoryPath = ":memory:"
)

// Options configures key names and timeouts for a repository.
type Options struct {
	UsersKey       string
	SessionKey     string
	QueryTimeout   time.Duration
	DirPermissions os.FileMode
}

// DefaultOptions returns the options used by New.
func DefaultOptions() Options {
	return Options{
		UsersKey:       DefaultUsersKey,
		SessionKey:     DefaultSessionKey,
		QueryTimeout:   5 * time.Second,
		DirPermissions: 0o755,
	}
}

// Repository defines the interface for persistence operations
type Repository interface {
	// Raw key/value access
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	ListItems(ctx context.Context) ([]*Item, error)

	// Account store
	LoadUsers(ctx context.Context) (UsersBlob, error)
	SaveUsers(ctx context.Context, users UsersBlob) error

	// Session marker
	GetSession(ctx context.Context) (string, error)
	SetSession(ctx context.Context, email string) error
	ClearSession(ctx context.Context) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions creates a repository with custom key names and timeouts.
// Zero-valued fields fall back to DefaultOptions.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	opts = withDefaults(opts)

	if dbPath == "" {
		return nil, errors.NewDatabaseError("open database", stderrors.New("db path is empty"))
	}
	if !isSpecialPath(dbPath) {
		if err := os.MkdirAll(filepath.Dir(dbPath), opts.DirPermissions); err != nil && !stderrors.Is(err, os.ErrExist) {
			return nil, errors.NewDatabaseError("create data directory", err)
		}
	}

	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// A single connection keeps :memory: databases alive across calls.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), opts.QueryTimeout)
	defer cancel()
	if err := migrations.RunMigrationsContext(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

func withDefaults(opts Options) Options {
	defaults := DefaultOptions()
	if opts.UsersKey == "" {
		opts.UsersKey = defaults.UsersKey
	}
	if opts.SessionKey == "" {
		opts.SessionKey = defaults.SessionKey
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = defaults.QueryTimeout
	}
	if opts.DirPermissions == 0 {
		opts.DirPermissions = defaults.DirPermissions
	}
	return opts
}

func isSpecialPath(path string) bool {
	return path == MemoryPath || strings.HasPrefix(path, "file:")
}

func sqliteDSN(path string) string {
	if isSpecialPath(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, r.opts.QueryTimeout)
}

// GetItem returns the value stored under key. found is false when the key is absent.
func (r *SQLiteRepository) GetItem(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT key, value, updated_at FROM storage WHERE key = ?`
	item, err := QuerySingle(ctx, r.db, query, ScanItem, "storage item", key, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return item.Value, true, nil
}

// SetItem creates or replaces the value stored under key
func (r *SQLiteRepository) SetItem(ctx context.Context, key, value string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	INSERT INTO storage (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return Execute(ctx, r.db, "set item "+key, query, key, value, FormatTimeForDB(time.Now()))
}

// RemoveItem deletes key. Removing an absent key is not an error.
func (r *SQLiteRepository) RemoveItem(ctx context.Context, key string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return Execute(ctx, r.db, "remove item "+key, `DELETE FROM storage WHERE key = ?`, key)
}

// ListItems returns every stored key/value pair ordered by key
func (r *SQLiteRepository) ListItems(ctx context.Context) ([]*Item, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT key, value, updated_at FROM storage ORDER BY key ASC`
	return QueryMultiple(ctx, r.db, query, ScanItems, "storage items")
}

// LoadUsers reads the account map. A missing or unparseable value yields an
// empty map. Keys are normalized (trimmed, lowercased, empty ones dropped) and
// the normalized map is written back when normalization changed anything.
func (r *SQLiteRepository) LoadUsers(ctx context.Context) (UsersBlob, error) {
	raw, found, err := r.GetItem(ctx, r.opts.UsersKey)
	if err != nil {
		return nil, err
	}
	if !found || strings.TrimSpace(raw) == "" {
		return UsersBlob{}, nil
	}

	users, changed, err := DecodeUsers(raw)
	if err != nil {
		logging.Debugf("ignoring unreadable %s value: %v\n", r.opts.UsersKey, err)
		return UsersBlob{}, nil
	}

	if changed {
		logging.Debugf("normalized account keys in %s, writing back\n", r.opts.UsersKey)
		if err := r.SaveUsers(ctx, users); err != nil {
			return nil, err
		}
	}

	return users, nil
}

// SaveUsers serializes the account map under the users key
func (r *SQLiteRepository) SaveUsers(ctx context.Context, users UsersBlob) error {
	data, err := EncodeUsers(users)
	if err != nil {
		return errors.NewStorageError(r.opts.UsersKey, err)
	}
	return r.SetItem(ctx, r.opts.UsersKey, data)
}

// GetSession returns the session email, or "" when nobody is logged in
func (r *SQLiteRepository) GetSession(ctx context.Context) (string, error) {
	value, found, err := r.GetItem(ctx, r.opts.SessionKey)
	if err != nil || !found {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// SetSession records email as the logged-in account
func (r *SQLiteRepository) SetSession(ctx context.Context, email string) error {
	return r.SetItem(ctx, r.opts.SessionKey, email)
}

// ClearSession removes the session marker
func (r *SQLiteRepository) ClearSession(ctx context.Context) error {
	return r.RemoveItem(ctx, r.opts.SessionKey)
}

// DecodeUsers parses a users blob and normalizes its keys. changed reports
// whether any key was rewritten, dropped or merged. Keys are visited in sorted
// order so that when two keys collide the later one wins deterministically.
// Entries that are not JSON objects are skipped.
func DecodeUsers(raw string) (UsersBlob, bool, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false, err
	}
	if entries == nil {
		return UsersBlob{}, true, nil
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	users := make(UsersBlob, len(entries))
	changed := false
	for _, key := range keys {
		var record UserRecord
		if err := json.Unmarshal(entries[key], &record); err != nil || isNullOrScalar(entries[key]) {
			logging.Debugf("skipping unreadable account entry %q\n", key)
			changed = true
			continue
		}

		normalized := normalizeKey(key)
		if normalized != key {
			changed = true
		}
		if normalized == "" {
			continue
		}
		if _, dup := users[normalized]; dup {
			changed = true
		}
		users[normalized] = record
	}

	return users, changed, nil
}

// EncodeUsers serializes a users blob; nil task lists are written as [].
func EncodeUsers(users UsersBlob) (string, error) {
	if users == nil {
		users = UsersBlob{}
	}
	out := make(UsersBlob, len(users))
	for email, record := range users {
		if record.Tasks == nil {
			record.Tasks = []TaskRecord{}
		}
		out[email] = record
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func isNullOrScalar(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return !strings.HasPrefix(trimmed, "{")
}

package dictionary

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// entryRow is a row of the entries table.
type entryRow struct {
	Word       string    `db:"word"`
	Definition string    `db:"definition"`
	Examples   jsonList  `db:"examples"`
	Synonyms   jsonList  `db:"synonyms"`
	Antonyms   jsonList  `db:"antonyms"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row entryRow) entry() Entry {
	return Entry{
		Definition: row.Definition,
		Examples:   row.Examples,
		Synonyms:   row.Synonyms,
		Antonyms:   row.Antonyms,
	}.withEmptyFields()
}

// jsonList stores a string list in a JSON column.
type jsonList []string

func (l jsonList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	contents, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal > %w", err)
	}
	return string(contents), nil
}

func (l *jsonList) Scan(src any) error {
	var contents []byte
	switch v := src.(type) {
	case nil:
		*l = jsonList{}
		return nil
	case []byte:
		contents = v
	case string:
		contents = []byte(v)
	default:
		return fmt.Errorf("unsupported type for a JSON list: %T", src)
	}
	var list []string
	if err := json.Unmarshal(contents, &list); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	*l = list
	return nil
}

// DBStore implements Store on the MySQL entries table.
// Each Put is a single upsert, so there is no whole-document rewrite.
type DBStore struct {
	db *sqlx.DB
}

var _ Store = (*DBStore)(nil)

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// Get returns the entry of a word, or false if the word is not stored.
func (r *DBStore) Get(ctx context.Context, word string) (Entry, bool, error) {
	var row entryRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM entries WHERE word = ?", Normalize(word))
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("db.GetContext(entries) > %w", err)
	}
	return row.entry(), true, nil
}

func (r *DBStore) Contains(ctx context.Context, word string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM entries WHERE word = ?", Normalize(word)); err != nil {
		return false, fmt.Errorf("db.GetContext(count entries) > %w", err)
	}
	return count > 0, nil
}

// Put inserts or updates an entry.
func (r *DBStore) Put(ctx context.Context, word string, entry Entry) error {
	key := Normalize(word)
	if key == "" {
		return ErrEmptyWord
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (word, definition, examples, synonyms, antonyms)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE definition = VALUES(definition), examples = VALUES(examples), synonyms = VALUES(synonyms), antonyms = VALUES(antonyms)`,
		key, entry.Definition, jsonList(entry.Examples), jsonList(entry.Synonyms), jsonList(entry.Antonyms))
	if err != nil {
		return fmt.Errorf("%w: db.ExecContext(upsert entries) > %w", ErrPersistence, err)
	}
	return nil
}

// Words returns stored words in the order they were first added.
func (r *DBStore) Words(ctx context.Context) ([]string, error) {
	var words []string
	if err := r.db.SelectContext(ctx, &words, "SELECT word FROM entries ORDER BY created_at, word"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(entries) > %w", err)
	}
	return words, nil
}

package dictionary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryColumns = []string{
	"word", "definition", "examples", "synonyms", "antonyms", "created_at", "updated_at",
}

func TestDBStore_Get(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		word      string
		setupMock func(mock sqlmock.Sqlmock)
		want      Entry
		wantOK    bool
		wantErr   bool
	}{
		{
			name: "found",
			word: " Hello",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(entryColumns).
					AddRow("hello", "a greeting", `["hello there"]`, `["hi"]`, `[]`, now, now)
				mock.ExpectQuery("SELECT \\* FROM entries WHERE word = \\?").
					WithArgs("hello").
					WillReturnRows(rows)
			},
			want: Entry{
				Definition: "a greeting",
				Examples:   []string{"hello there"},
				Synonyms:   []string{"hi"},
				Antonyms:   []string{},
			},
			wantOK: true,
		},
		{
			name: "null lists",
			word: "hello",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(entryColumns).
					AddRow("hello", "", nil, nil, nil, now, now)
				mock.ExpectQuery("SELECT \\* FROM entries WHERE word = \\?").
					WithArgs("hello").
					WillReturnRows(rows)
			},
			want: Entry{
				Examples: []string{},
				Synonyms: []string{},
				Antonyms: []string{},
			},
			wantOK: true,
		},
		{
			name: "not found",
			word: "nonexistent",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM entries WHERE word = \\?").
					WithArgs("nonexistent").
					WillReturnRows(sqlmock.NewRows(entryColumns))
			},
		},
		{
			name: "query error",
			word: "hello",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM entries WHERE word = \\?").
					WithArgs("hello").
					WillReturnError(errors.New("connection lost"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			store := NewDBStore(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, ok, err := store.Get(context.Background(), tt.word)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_Contains(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewDBStore(sqlx.NewDb(db, "mysql"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM entries WHERE word = \\?").
		WithArgs("cat").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))

	got, err := store.Contains(context.Background(), "Cat")
	require.NoError(t, err)
	assert.True(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_Put(t *testing.T) {
	t.Run("upserts the normalized word", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := NewDBStore(sqlx.NewDb(db, "mysql"))
		mock.ExpectExec("INSERT INTO entries").
			WithArgs("hello", "a greeting", `["hello there"]`, `[]`, `[]`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = store.Put(context.Background(), "Hello ", Entry{
			Definition: "a greeting",
			Examples:   []string{"hello there"},
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps failures as persistence errors", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := NewDBStore(sqlx.NewDb(db, "mysql"))
		mock.ExpectExec("INSERT INTO entries").WillReturnError(errors.New("read-only"))

		err = store.Put(context.Background(), "hello", Entry{})
		assert.ErrorIs(t, err, ErrPersistence)
	})
}

func TestDBStore_Words(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewDBStore(sqlx.NewDb(db, "mysql"))
	mock.ExpectQuery("SELECT word FROM entries ORDER BY created_at, word").
		WillReturnRows(sqlmock.NewRows([]string{"word"}).AddRow("zebra").AddRow("cat"))

	got, err := store.Words(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "cat"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

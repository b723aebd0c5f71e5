package dictionary_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/wordwise/internal/dictionary"
	mock_dictionary "github.com/at-ishikawa/wordwise/internal/mocks/dictionary"
)

func newTempStore(t *testing.T) *dictionary.JSONStore {
	t.Helper()
	return dictionary.NewJSONStore(filepath.Join(t.TempDir(), "dictionary.json"))
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	cat := dictionary.Entry{
		Definition: "a feline",
		Examples:   []string{"the cat sat"},
		Synonyms:   []string{"kitty"},
		Antonyms:   []string{},
	}

	t.Run("stored word never reaches the fetcher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mock_dictionary.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)

		store := newTempStore(t)
		require.NoError(t, store.Put(ctx, "cat", cat))

		got, err := dictionary.NewResolver(store, fetcher).Resolve(ctx, "Cat ")
		require.NoError(t, err)
		assert.Equal(t, cat, got)
	})

	t.Run("fetched word is cached for the next session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mock_dictionary.NewMockFetcher(ctrl)
		fetcher.EXPECT().
			Fetch(gomock.Any(), "Hello").
			Return(dictionary.Entry{Definition: "a greeting", Examples: []string{"hello there"}}, nil).
			Times(1)

		store := newTempStore(t)
		got, err := dictionary.NewResolver(store, fetcher).Resolve(ctx, " Hello")
		require.NoError(t, err)
		want := dictionary.Entry{
			Definition: "a greeting",
			Examples:   []string{"hello there"},
			Synonyms:   []string{},
			Antonyms:   []string{},
		}
		assert.Equal(t, want, got)

		reloaded := dictionary.Load(store.Path())
		got, err = dictionary.NewResolver(reloaded, fetcher).Resolve(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mock_dictionary.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)

		_, err := dictionary.NewResolver(newTempStore(t), fetcher).Resolve(ctx, "   ")
		assert.ErrorIs(t, err, dictionary.ErrNotFound)
	})

	t.Run("remote failure is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mock_dictionary.NewMockFetcher(ctrl)
		fetcher.EXPECT().
			Fetch(gomock.Any(), "qwzx").
			Return(dictionary.Entry{}, dictionary.ErrRemoteNotFound)

		store := newTempStore(t)
		_, err := dictionary.NewResolver(store, fetcher).Resolve(ctx, "qwzx")
		assert.ErrorIs(t, err, dictionary.ErrNotFound)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("offline resolver", func(t *testing.T) {
		_, err := dictionary.NewResolver(newTempStore(t), nil).Resolve(ctx, "cat")
		assert.ErrorIs(t, err, dictionary.ErrNotFound)
	})

	t.Run("store read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_dictionary.NewMockStore(ctrl)
		store.EXPECT().Get(gomock.Any(), "cat").Return(dictionary.Entry{}, false, errors.New("connection lost"))

		_, err := dictionary.NewResolver(store, nil).Resolve(ctx, "cat")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, dictionary.ErrNotFound)
	})

	t.Run("fetched entry is still returned when it cannot be saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mock_dictionary.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), "cat").Return(cat, nil)

		path := filepath.Join(t.TempDir(), "dictionary.json")
		require.NoError(t, os.Mkdir(path, 0755))

		got, err := dictionary.NewResolver(dictionary.NewJSONStore(path), fetcher).Resolve(ctx, "cat")
		assert.ErrorIs(t, err, dictionary.ErrPersistence)
		assert.True(t, dictionary.IsPersistenceError(err))
		assert.Equal(t, cat, got)
	})
}

func TestResolver_ResolveAsync(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	fetcher := mock_dictionary.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), "cat").Return(dictionary.Entry{Definition: "a feline"}, nil)

	type result struct {
		entry dictionary.Entry
		err   error
	}
	results := make(chan result, 1)
	dictionary.NewResolver(newTempStore(t), fetcher).ResolveAsync(ctx, "cat", func(entry dictionary.Entry, err error) {
		results <- result{entry: entry, err: err}
	})

	select {
	case got := <-results:
		require.NoError(t, got.err)
		assert.Equal(t, "a feline", got.entry.Definition)
	case <-time.After(5 * time.Second):
		t.Fatal("ResolveAsync did not call back")
	}
}

func TestResolver_Suggest(t *testing.T) {
	ctx := context.Background()

	t.Run("suggests a close word", func(t *testing.T) {
		store := newTempStore(t)
		require.NoError(t, store.Put(ctx, "cat", dictionary.Entry{Definition: "a feline"}))

		got, ok, err := dictionary.NewResolver(store, nil).Suggest(ctx, "cwt")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "cat", got)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_dictionary.NewMockStore(ctrl)
		store.EXPECT().Words(gomock.Any()).Return(nil, errors.New("connection lost"))

		_, ok, err := dictionary.NewResolver(store, nil).Suggest(ctx, "cwt")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestResolver_Complete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mock_dictionary.NewMockStore(ctrl)
	store.EXPECT().Words(gomock.Any()).Return([]string{"cattle", "cat", "dog"}, nil)

	got, err := dictionary.NewResolver(store, nil).Complete(ctx, "ca", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cattle"}, got)
}

func TestResolver_Add(t *testing.T) {
	ctx := context.Background()
	definition := "a feline"

	tests := []struct {
		name    string
		word    string
		update  dictionary.EntryUpdate
		want    dictionary.Entry
		wantErr error
	}{
		{
			name: "definition and lists",
			word: "Cat",
			update: dictionary.EntryUpdate{
				Definition: &definition,
				Synonyms:   dictionary.SplitList("kitty, feline"),
			},
			want: dictionary.Entry{
				Definition: "a feline",
				Examples:   []string{},
				Synonyms:   []string{"kitty", "feline"},
				Antonyms:   []string{},
			},
		},
		{
			name: "only examples",
			word: "cat",
			update: dictionary.EntryUpdate{
				Examples: []string{"the cat sat"},
			},
			want: dictionary.Entry{
				Examples: []string{"the cat sat"},
				Synonyms: []string{},
				Antonyms: []string{},
			},
		},
		{
			name:    "every field empty",
			word:    "cat",
			update:  dictionary.EntryUpdate{},
			wantErr: dictionary.ErrEmptyEntry,
		},
		{
			name:    "empty word",
			word:    " ",
			update:  dictionary.EntryUpdate{Definition: &definition},
			wantErr: dictionary.ErrEmptyWord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTempStore(t)
			got, err := dictionary.NewResolver(store, nil).Add(ctx, tt.word, tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, store.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			stored, ok, err := dictionary.Load(store.Path()).Get(ctx, tt.word)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, stored)
		})
	}
}

func TestResolver_Overwrite(t *testing.T) {
	ctx := context.Background()
	existing := dictionary.Entry{
		Definition: "a feline",
		Examples:   []string{"the cat sat"},
		Synonyms:   []string{"kitty"},
		Antonyms:   []string{"dog"},
	}
	newDefinition := "a small feline"

	tests := []struct {
		name   string
		update dictionary.EntryUpdate
		want   dictionary.Entry
	}{
		{
			name: "replaces only supplied lists",
			update: dictionary.EntryUpdate{
				Definition: &newDefinition,
				Synonyms:   []string{"puss"},
			},
			want: dictionary.Entry{
				Definition: "a small feline",
				Examples:   []string{"the cat sat"},
				Synonyms:   []string{"puss"},
				Antonyms:   []string{"dog"},
			},
		},
		{
			name:   "empty definition clears it",
			update: dictionary.EntryUpdate{},
			want: dictionary.Entry{
				Definition: "",
				Examples:   []string{"the cat sat"},
				Synonyms:   []string{"kitty"},
				Antonyms:   []string{"dog"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTempStore(t)
			require.NoError(t, store.Put(ctx, "cat", existing))

			got, err := dictionary.NewResolver(store, nil).Overwrite(ctx, "cat", tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			stored, _, err := store.Get(ctx, "cat")
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored)
		})
	}

	t.Run("save failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_dictionary.NewMockStore(ctrl)
		store.EXPECT().Get(gomock.Any(), "cat").Return(existing, true, nil)
		store.EXPECT().Put(gomock.Any(), "cat", gomock.Any()).Return(dictionary.ErrPersistence)

		_, err := dictionary.NewResolver(store, nil).Overwrite(ctx, "cat", dictionary.EntryUpdate{Definition: &newDefinition})
		assert.ErrorIs(t, err, dictionary.ErrPersistence)
	})
}

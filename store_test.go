package rolodex

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/rolodex/codec"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
	"github.com/poiesic/rolodex/storage/badger"
	"github.com/poiesic/rolodex/storage/file"
	"github.com/poiesic/rolodex/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIndex() *trie.Index {
	idx := trie.New()
	idx.Insert("Ananya", "111")
	idx.Insert("Anand", "222")
	idx.Insert("Ankit", "333")
	idx.Insert("rahul", "555")
	idx.Insert("Jo-Ann", "777")
	return idx
}

func TestLoadFromFile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")

	idx, report, err := LoadFromFile(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, idx)
	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, LoadStatusNotFound, report.Status)
	assert.Equal(t, path, report.Source)
}

func TestLoadFromFile_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"truncated json", "contacts.json", `[{"name": "rahul", "number": "55`},
		{"json object", "contacts.json", `{"name": "rahul"}`},
		{"empty json", "contacts.json", ``},
		{"yaml mapping", "contacts.yaml", "name: rahul\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			idx, report, err := LoadFromFile(context.Background(), path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, storage.ErrSerializationFailed))
			require.NotNil(t, idx)
			assert.Equal(t, 0, idx.Len())
			assert.Equal(t, LoadStatusParseError, report.Status)
		})
	}
}

func TestLoadFromFile_Unreadable(t *testing.T) {
	// a directory cannot be read as a file
	dir := t.TempDir()

	idx, report, err := LoadFromFile(context.Background(), dir)
	require.Error(t, err)
	assert.Equal(t, LoadStatusFailed, report.Status)
	assert.Equal(t, 0, idx.Len())
}

func TestLoadFromFile_SkipsIncompleteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	content := `[
		{"name": "rahul", "number": "555"},
		{"name": "nonumber"},
		{"name": "anand", "number": 222}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	idx, report, err := LoadFromFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, LoadStatusLoaded, report.Status)
	assert.Equal(t, 1, report.Records)
	assert.Equal(t, []core.Contact{{Name: "rahul", Number: "555"}}, codec.Records(idx))
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"contacts.json", "contacts.yaml"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), name)
			original := sampleIndex()

			require.NoError(t, SaveToFile(ctx, original, path))

			loaded, report, err := LoadFromFile(ctx, path)
			require.NoError(t, err)
			assert.Equal(t, LoadStatusLoaded, report.Status)
			assert.Equal(t, original.Len(), report.Records)
			assert.Equal(t, codec.Records(original), codec.Records(loaded))
		})
	}
}

func TestLoadFromFile_FileOrderDoesNotMatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	content := `[
		{"name": "zed", "number": "3"},
		{"name": "Bob", "number": "2"},
		{"name": "amy", "number": "1"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	idx, _, err := LoadFromFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []core.Contact{
		{Name: "amy", Number: "1"},
		{Name: "bob", Number: "2"},
		{Name: "zed", Number: "3"},
	}, codec.Records(idx))
}

func TestSaveToFile_WriteError(t *testing.T) {
	idx := sampleIndex()
	before := codec.Records(idx)
	path := filepath.Join(t.TempDir(), "missing-dir", "contacts.json")

	err := SaveToFile(context.Background(), idx, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrWriteFailed))
	assert.Equal(t, before, codec.Records(idx), "index must be unchanged")
}

func TestLoadSave_Repository(t *testing.T) {
	ctx := context.Background()
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	idx, report, err := Load(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, LoadStatusNotFound, report.Status)
	assert.Equal(t, 0, idx.Len())

	original := sampleIndex()
	require.NoError(t, Save(ctx, original, repo))

	loaded, report, err := Load(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, LoadStatusLoaded, report.Status)
	assert.Equal(t, codec.Records(original), codec.Records(loaded))
}

func TestOpenRepository(t *testing.T) {
	dir := t.TempDir()

	t.Run("json file", func(t *testing.T) {
		repo, err := OpenRepository(filepath.Join(dir, "contacts.json"))
		require.NoError(t, err)
		defer repo.Close()
		fr, ok := repo.(*file.Repository)
		require.True(t, ok)
		assert.Equal(t, codec.FormatJSON, fr.Format())
	})

	t.Run("badger suffix", func(t *testing.T) {
		repo, err := OpenRepository(filepath.Join(dir, "contacts.badger"))
		require.NoError(t, err)
		defer repo.Close()
		_, ok := repo.(*badger.ContactRepository)
		assert.True(t, ok)
	})

	t.Run("existing directory", func(t *testing.T) {
		repo, err := OpenRepository(t.TempDir())
		require.NoError(t, err)
		defer repo.Close()
		_, ok := repo.(*badger.ContactRepository)
		assert.True(t, ok)
	})
}

func TestLoadStatus_String(t *testing.T) {
	assert.Equal(t, "loaded", LoadStatusLoaded.String())
	assert.Equal(t, "not found", LoadStatusNotFound.String())
	assert.Equal(t, "parse error", LoadStatusParseError.String())
	assert.Equal(t, "failed", LoadStatusFailed.String())
	assert.Equal(t, "LoadStatus(9)", LoadStatus(9).String())
}

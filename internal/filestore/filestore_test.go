package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Save(t *testing.T) {
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "teaser.pdf")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	att, err := store.Save(src)
	require.NoError(t, err)

	assert.NotEmpty(t, att.ID)
	assert.Equal(t, "teaser.pdf", att.Filename)
	assert.Equal(t, int64(7), att.Size)
	assert.False(t, att.UploadedAt.IsZero())

	data, err := os.ReadFile(att.URL)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestStore_Save_DuplicateFilenamesDoNotCollide(t *testing.T) {
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "teaser.pdf")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	first, err := store.Save(src)
	require.NoError(t, err)
	second, err := store.Save(src)
	require.NoError(t, err)

	assert.NotEqual(t, first.URL, second.URL)
	assert.FileExists(t, first.URL)
	assert.FileExists(t, second.URL)
}

func TestStore_Save_MissingSource(t *testing.T) {
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("/nonexistent/teaser.pdf")
	require.Error(t, err)
}

func TestStore_Remove(t *testing.T) {
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "teaser.pdf")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	att, err := store.Save(src)
	require.NoError(t, err)

	require.NoError(t, store.Remove(att))
	assert.NoFileExists(t, att.URL)
}

func TestStore_Remove_MissingFileIsNotAnError(t *testing.T) {
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	err = store.Remove(domain.Attachment{URL: filepath.Join(t.TempDir(), "gone.pdf")})
	assert.NoError(t, err)
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "files")
	_, err := filestore.New(dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestSaveAndRemove(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	urlPath, err := store.Save(uploadHeader(t, "Bike.JPG", []byte("jpeg-bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(urlPath, URLPrefix+"/"))
	assert.True(t, strings.HasSuffix(urlPath, ".jpg"), "extension should be lowercased: %s", urlPath)

	onDisk := filepath.Join(store.Dir(), filepath.Base(urlPath))
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), content)

	require.NoError(t, store.Remove(urlPath))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(uploadHeader(t, "bike.png", []byte("a")))
	require.NoError(t, err)
	second, err := store.Save(uploadHeader(t, "bike.png", []byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRemoveRejectsForeignPaths(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Remove("/etc/passwd"))
	assert.Error(t, store.Remove(""))
	assert.Error(t, store.Remove(URLPrefix))
}

func TestRemoveStripsTraversal(t *testing.T) {
	publicDir := t.TempDir()
	store, err := NewImageStore(publicDir)
	require.NoError(t, err)

	secret := filepath.Join(publicDir, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("keep"), 0o644))

	// Base-name stripping means this targets uploads/secret.txt, not the
	// parent directory's file.
	_ = store.Remove(URLPrefix + "/../secret.txt")

	_, err = os.Stat(secret)
	assert.NoError(t, err, "file outside the uploads dir must survive")
}

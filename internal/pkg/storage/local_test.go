package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadDownloadRoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	key, err := s.Upload(ctx, strings.NewReader("hello"), "photos/u1/avatar.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "photos/u1/avatar.jpg", key)

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Download(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"../outside.txt", "photos/../../outside.txt", "/etc/passwd"} {
		_, err := s.Upload(ctx, strings.NewReader("x"), key, "text/plain")
		assert.Error(t, err, "key %q must be rejected", key)
	}
}

func TestLocalStorage_DeleteIsIdempotent(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	key, err := s.Upload(ctx, strings.NewReader("x"), "leave/u1/doc.pdf", "application/octet-stream")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key))

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_URLNormalizesBase(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := s.GetURL(context.Background(), "photos/u1/avatar.jpg", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/photos/u1/avatar.jpg", url)
}

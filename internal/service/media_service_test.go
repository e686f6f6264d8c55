package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/lshigami/Zooracle/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaUploadImage(t *testing.T) {
	store := newFakeStorage()
	svc := NewMediaService(store)

	resp, err := svc.Upload(context.Background(), "lion.JPG", 4, strings.NewReader("data"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.FileID)
	assert.Equal(t, "lion.JPG", resp.OriginalFilename)
	assert.Equal(t, ".jpg", resp.Extension)
	assert.Equal(t, "image/jpeg", resp.ContentType)
	assert.Equal(t, int64(4), resp.FileSize)

	keys := store.keys()
	require.Len(t, keys, 1)
	assert.Equal(t, "images/"+resp.FileID+".jpg", keys[0])
}

func TestMediaUploadVideoCategory(t *testing.T) {
	store := newFakeStorage()
	svc := NewMediaService(store)

	resp, err := svc.Upload(context.Background(), "tour.mp4", 5, strings.NewReader("video"))
	require.NoError(t, err)

	keys := store.keys()
	require.Len(t, keys, 1)
	assert.Equal(t, "videos/"+resp.FileID+".mp4", keys[0])
}

func TestMediaUploadRejectsUnknownExtension(t *testing.T) {
	svc := NewMediaService(newFakeStorage())

	_, err := svc.Upload(context.Background(), "notes.txt", 4, strings.NewReader("data"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestMediaUploadSizeLimits(t *testing.T) {
	svc := NewMediaService(newFakeStorage())

	_, err := svc.Upload(context.Background(), "huge.png", maxImageSize+1, bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.Upload(context.Background(), "huge.mp4", maxVideoSize+1, bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestMediaUploadRejectsUndeclaredExtraBytes(t *testing.T) {
	svc := NewMediaService(newFakeStorage())

	// Declared size is smaller than the actual stream.
	_, err := svc.Upload(context.Background(), "cat.png", 2, strings.NewReader("abcdef"))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestMediaFetchProbesExtensions(t *testing.T) {
	store := newFakeStorage()
	svc := NewMediaService(store)

	require.NoError(t, store.Upload(context.Background(), "images/abc.webp", strings.NewReader("img"), 3, "image/webp"))

	reader, contentType, size, err := svc.Fetch(context.Background(), "abc")
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/webp", contentType)
	assert.Equal(t, int64(3), size)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))
}

func TestMediaFetchNotFound(t *testing.T) {
	svc := NewMediaService(newFakeStorage())

	_, _, _, err := svc.Fetch(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

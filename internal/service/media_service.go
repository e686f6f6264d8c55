package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/storage"
	"github.com/rs/zerolog/log"
)

const (
	maxImageSize = 4 << 20 // 4 MiB
	maxVideoSize = 1 << 30 // 1 GiB
)

// MediaService uploads files into object storage and serves them back by
// their opaque id. An id carries neither category nor extension, so reads
// probe the known key combinations until one hits.
type MediaService interface {
	Upload(ctx context.Context, filename string, size int64, r io.Reader) (*dto.MediaUploadResponse, error)
	// Fetch returns the object stream, its content type and size.
	Fetch(ctx context.Context, fileID string) (io.ReadCloser, string, int64, error)
}

type mediaService struct {
	store storage.ObjectStorage
}

func NewMediaService(store storage.ObjectStorage) MediaService {
	return &mediaService{store: store}
}

func (s *mediaService) Upload(ctx context.Context, filename string, size int64, r io.Reader) (*dto.MediaUploadResponse, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var category string
	switch {
	case storage.IsImageExtension(ext):
		category = "images"
		if size > maxImageSize {
			return nil, fmt.Errorf("%w: images up to 4 MB", ErrFileTooLarge)
		}
	case storage.IsVideoExtension(ext):
		category = "videos"
		if size > maxVideoSize {
			return nil, fmt.Errorf("%w: videos up to 1 GB", ErrFileTooLarge)
		}
	default:
		return nil, ErrUnsupportedFileType
	}

	// Spool to disk first so a broken client connection never leaves a
	// partial object in the bucket.
	tmp, err := os.CreateTemp("", "zooracle-upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	written, err := io.Copy(tmp, io.LimitReader(r, size+1))
	if err != nil {
		return nil, fmt.Errorf("failed to spool upload: %w", err)
	}
	if written > size {
		return nil, ErrFileTooLarge
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind temp file: %w", err)
	}

	fileID := uuid.NewString()
	key := category + "/" + fileID + ext
	contentType := storage.ContentTypeFor(ext)
	if err := s.store.Upload(ctx, key, tmp, written, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Info().Str("key", key).Int64("size", written).Msg("Media uploaded")
	return &dto.MediaUploadResponse{
		FileID:           fileID,
		OriginalFilename: filepath.Base(filename),
		ContentType:      contentType,
		FileSize:         written,
		Extension:        ext,
	}, nil
}

func (s *mediaService) Fetch(ctx context.Context, fileID string) (io.ReadCloser, string, int64, error) {
	for _, category := range storage.Categories {
		for _, ext := range storage.AllExtensions() {
			key := category + "/" + fileID + ext
			reader, size, err := s.store.Fetch(ctx, key)
			if err == nil {
				return reader, storage.ContentTypeFor(ext), size, nil
			}
			if !errors.Is(err, storage.ErrObjectNotFound) {
				return nil, "", 0, fmt.Errorf("failed to fetch %s: %w", key, err)
			}
		}
	}
	return nil, "", 0, storage.ErrObjectNotFound
}

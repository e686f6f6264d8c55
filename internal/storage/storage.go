package storage

import (
	"context"
	"io"
)

// ObjectStorage is the boundary to the media object store. Keys are
// "<category>/<id><ext>" paths; callers probe extension variants because
// the id stored in the database carries no extension.
type ObjectStorage interface {
	// Upload streams the reader's content to the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Fetch returns a reader over the object and its size. A missing key
	// yields ErrObjectNotFound.
	Fetch(ctx context.Context, key string) (io.ReadCloser, int64, error)
	// Remove deletes the object; removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

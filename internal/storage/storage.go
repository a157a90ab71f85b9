package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PutOptions carries optional upload parameters. Size should be the exact
// byte count when known; -1 lets the backend chunk as it sees fit.
type PutOptions struct {
	Size        int64
	ContentType string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is an S3-compatible object store for original invoice images.
// Implementations stream; nothing touches local disk.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ObjectKey builds the canonical object key for an uploaded invoice image.
// Keys are namespaced by user and batch so bulk deletes stay prefix-scans.
func ObjectKey(userID string, batchID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return userID + "/" + batchID.String() + "/" + uuid.NewString() + ext
}

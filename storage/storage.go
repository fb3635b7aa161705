// Package storage is the file-object side of the store. Every entity shares
// the single public "activities" bucket; uploads get a randomized key and
// come back as a durably public URL.
package storage

import (
	"context"
	"errors"
	"io"
	"mime"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BucketName is the shared public bucket used by activities, blogs and
// gallery items alike.
const BucketName = "activities"

// ErrBucketNotFound is the one upload failure surfaced with a specific
// remediation message; everything else is reported generically.
var ErrBucketNotFound = errors.New("storage bucket not found")

type Store interface {
	// Upload writes the file under a randomized key derived from filename's
	// extension and returns its public URL. No size or type validation
	// happens here.
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)

	// List returns the object keys currently in the bucket.
	List(ctx context.Context) ([]string, error)

	// Buckets returns the bucket names visible to the configured credentials.
	Buckets(ctx context.Context) ([]string, error)
}

// objectKey builds a fresh storage key keeping only the original extension.
// Collisions are treated as negligible and not retried.
func objectKey(filename string) string {
	return uuid.NewString() + filepath.Ext(filename)
}

func contentType(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// FromEnv picks the backend: S3 when S3_ENDPOINT or S3_ACCESS_KEY is
// configured, local disk otherwise.
func FromEnv(ctx context.Context, log *logrus.Logger) (Store, error) {
	if s3Configured() {
		store, err := NewS3Store(ctx)
		if err != nil {
			return nil, err
		}
		log.WithField("bucket", BucketName).Info("using s3 object storage")
		return store, nil
	}

	store, err := NewDiskStore("", "")
	if err != nil {
		return nil, err
	}
	log.WithField("dir", store.BucketDir()).Info("using local disk object storage")
	return store, nil
}

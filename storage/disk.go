package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps objects under root/<bucket>/ and serves them through the
// router's static mount. The bucket is a directory; removing it reproduces
// the bucket-missing failure mode of the hosted store.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates the store rooted at root (UPLOADS_DIR or
// "public/uploads" when empty) and ensures the bucket directory exists.
// baseURL defaults to the static mount of the uploads dir.
func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if root == "" {
		root = os.Getenv("UPLOADS_DIR")
	}
	if root == "" {
		root = filepath.Join("public", "uploads")
	}
	if baseURL == "" {
		baseURL = "/public/uploads"
	}

	if err := os.MkdirAll(filepath.Join(root, BucketName), 0755); err != nil {
		return nil, fmt.Errorf("create bucket dir: %w", err)
	}

	return &DiskStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (d *DiskStore) BucketDir() string {
	return filepath.Join(d.root, BucketName)
}

func (d *DiskStore) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if _, err := os.Stat(d.BucketDir()); os.IsNotExist(err) {
		return "", ErrBucketNotFound
	}

	key := objectKey(filename)
	path := filepath.Join(d.BucketDir(), key)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write object: %w", err)
	}

	return d.baseURL + "/" + BucketName + "/" + key, nil
}

func (d *DiskStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.BucketDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBucketNotFound
		}
		return nil, err
	}

	var keys []string
	for _, e := range entries {
		if !e.IsDir() {
			keys = append(keys, e.Name())
		}
	}
	return keys, nil
}

func (d *DiskStore) Buckets(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

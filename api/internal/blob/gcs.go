// Package blob stores uploaded issue photos in Google Cloud Storage.
package blob

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ObjectInfo struct {
	Bucket      string `json:"bucket"`
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	GSURI       string `json:"gs_uri"`
}

type Store interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (ObjectInfo, error)
	Close() error
}

type GCSStore struct {
	client *storage.Client
	bucket string
	log    *zap.SugaredLogger
}

func NewGCSStore(ctx context.Context, bucket string, log *zap.SugaredLogger) (*GCSStore, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("storage bucket name is empty")
	}
	cl, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSStore{client: cl, bucket: bucket, log: log}, nil
}

// Upload writes the photo under emergency_issues/ with a unique key.
func (s *GCSStore) Upload(ctx context.Context, filename, contentType string, data []byte) (ObjectInfo, error) {
	key := fmt.Sprintf("emergency_issues/%s_%s", uuid.NewString(), sanitizeFilename(filename))

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return ObjectInfo{}, fmt.Errorf("write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return ObjectInfo{}, fmt.Errorf("finalize object %s: %w", key, err)
	}

	s.log.Infow("emergency image uploaded", "bucket", s.bucket, "path", key, "bytes", len(data))
	return ObjectInfo{
		Bucket:      s.bucket,
		Path:        key,
		ContentType: contentType,
		GSURI:       fmt.Sprintf("gs://%s/%s", s.bucket, key),
	}, nil
}

func (s *GCSStore) Close() error { return s.client.Close() }

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "upload"
	}
	return name
}

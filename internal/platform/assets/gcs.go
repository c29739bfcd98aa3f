package assets

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// GCSSource reads gs://bucket/key references. Credentials come from the
// ambient environment (ADC), same as the rest of the deployment.
type GCSSource struct {
	log    *logger.Logger
	client *storage.Client
}

func NewGCSSource(ctx context.Context, log *logger.Logger) (*GCSSource, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("init gcs client: %w", err)
	}
	return &GCSSource{log: log.With("component", "gcs_assets"), client: client}, nil
}

func (s *GCSSource) Fetch(ctx context.Context, ref string) ([]byte, error) {
	bucket, key, err := splitGCSRef(ref)
	if err != nil {
		return nil, err
	}
	r, err := s.client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open gs://%s/%s: %w", bucket, key, err)
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read gs://%s/%s: %w", bucket, key, err)
	}
	return b, nil
}

func splitGCSRef(ref string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(ref, "gs://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed gcs ref %q", ref)
	}
	return parts[0], parts[1], nil
}

package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// Source fetches template asset bytes (certificate background images, PDF
// templates) by reference. The actual asset store is an external concern;
// this only reads, and callers must treat returned bytes as immutable.
type Source interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// New builds a composite source that routes by reference scheme: gs:// to
// Cloud Storage, http(s):// to plain HTTP, anything else to a local
// directory. The GCS client is optional; gs:// refs fail cleanly without it.
func New(log *logger.Logger, baseDir string, gcs Source) Source {
	return &routingSource{
		log:    log.With("component", "assets"),
		local:  &localSource{baseDir: baseDir},
		remote: &httpSource{client: &http.Client{Timeout: 15 * time.Second}},
		gcs:    gcs,
	}
}

type routingSource struct {
	log    *logger.Logger
	local  Source
	remote Source
	gcs    Source
}

func (s *routingSource) Fetch(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case strings.HasPrefix(ref, "gs://"):
		if s.gcs == nil {
			return nil, fmt.Errorf("gcs source not configured for %q", ref)
		}
		return s.gcs.Fetch(ctx, ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return s.remote.Fetch(ctx, ref)
	default:
		return s.local.Fetch(ctx, ref)
	}
}

type localSource struct {
	baseDir string
}

func (s *localSource) Fetch(_ context.Context, ref string) ([]byte, error) {
	clean := filepath.Clean("/" + strings.TrimPrefix(ref, "/"))
	full := filepath.Join(s.baseDir, clean)
	if !strings.HasPrefix(full, filepath.Clean(s.baseDir)+string(os.PathSeparator)) {
		return nil, fmt.Errorf("asset ref %q escapes base dir", ref)
	}
	b, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("read local asset %q: %w", ref, err)
	}
	return b, nil
}

type httpSource struct {
	client *http.Client
}

func (s *httpSource) Fetch(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build asset request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch asset %q: %w", ref, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch asset %q: status %d", ref, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read asset body %q: %w", ref, err)
	}
	return b, nil
}

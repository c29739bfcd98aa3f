package certgen

import (
	"context"
	"math"
	"time"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/assets"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// Input carries the per-certificate values stamped onto the template.
type Input struct {
	LearnerName   string
	CourseTitle   string
	CertificateID string
	IssuedAt      time.Time
}

// Output is the rendered document. Same template and input always produce
// the same bytes, so results are safe to cache and re-serve.
type Output struct {
	Bytes       []byte
	ContentType string
}

// Renderer produces certificate documents from an effective template. The
// template decides the mode: a PDF template gets text overlaid on its first
// page, a background image gets text drawn onto it, and with neither the
// built-in layout is used. Any template asset failure degrades to the
// built-in layout rather than failing issuance.
type Renderer struct {
	log    *logger.Logger
	cfg    RenderConfig
	fonts  *fontSet
	assets assets.Source
}

func NewRenderer(log *logger.Logger, cfg RenderConfig, src assets.Source) (*Renderer, error) {
	fonts, err := loadFont(cfg.FontPath)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		log:    log.With("component", "certgen"),
		cfg:    cfg,
		fonts:  fonts,
		assets: src,
	}, nil
}

func (r *Renderer) Render(ctx context.Context, tpl Template, in Input) (Output, error) {
	if tpl.PdfURL != "" {
		src, err := r.assets.Fetch(ctx, tpl.PdfURL)
		if err != nil {
			r.log.Warn("pdf template fetch failed, using built-in layout", "ref", tpl.PdfURL, "error", err)
			return r.renderBuiltin(tpl, in)
		}
		out, err := r.renderPDF(tpl, src, in)
		if err != nil {
			r.log.Warn("pdf overlay failed, using built-in layout", "ref", tpl.PdfURL, "error", err)
			return r.renderBuiltin(tpl, in)
		}
		return out, nil
	}

	if tpl.BackgroundImage != "" {
		bg, err := r.assets.Fetch(ctx, tpl.BackgroundImage)
		if err != nil {
			r.log.Warn("background fetch failed, using built-in layout", "ref", tpl.BackgroundImage, "error", err)
			return r.renderBuiltin(tpl, in)
		}
		out, err := r.renderImage(tpl, bg, in)
		if err != nil {
			r.log.Warn("background overlay failed, using built-in layout", "ref", tpl.BackgroundImage, "error", err)
			return r.renderBuiltin(tpl, in)
		}
		return out, nil
	}

	return r.renderBuiltin(tpl, in)
}

// clampCoord pins a template coordinate into [0, max]. Template rows are
// admin-edited, so NaN, negative, and off-page values all occur in practice.
func (r *Renderer) clampCoord(label string, v, max float64) float64 {
	switch {
	case math.IsNaN(v):
		r.log.Warn("template coordinate is NaN, clamping to 0", "coord", label)
		return 0
	case v < 0:
		r.log.Warn("template coordinate negative, clamping to 0", "coord", label, "value", v)
		return 0
	case v > max:
		r.log.Warn("template coordinate off page, clamping", "coord", label, "value", v, "max", max)
		return max
	}
	return v
}

// issueDate is the human-readable stamp. UTC keeps renders reproducible
// regardless of server timezone.
func issueDate(t time.Time) string {
	return t.UTC().Format("2 January 2006")
}

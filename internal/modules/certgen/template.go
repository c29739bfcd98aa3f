package certgen

import (
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

const (
	defaultPrimaryColor = "#2563eb"
	defaultFontSize     = 30
)

// Template is the effective certificate template after merging the per-path
// override over the global default. Zero values in either layer mean "not
// set" and fall through.
type Template struct {
	BackgroundImage string
	PrimaryColor    string
	PdfURL          string

	NameX, NameY float64
	DateX, DateY float64
	IDX, IDY     float64

	FontSize int
}

// ResolveTemplate merges field by field: a present path-level value wins,
// an absent one falls back to the global template, and finally to built-in
// defaults for color and font size. Either argument may be nil.
func ResolveTemplate(global *domain.CertificateTemplate, path *domain.LearningPath) Template {
	tpl := Template{
		PrimaryColor: defaultPrimaryColor,
		FontSize:     defaultFontSize,
	}

	if global != nil {
		overlay(&tpl, global.BackgroundImage, global.PrimaryColor, global.CertPdfURL,
			global.CertNameX, global.CertNameY, global.CertDateX, global.CertDateY,
			global.CertIDX, global.CertIDY, global.CertFontSize)
	}
	if path != nil {
		overlay(&tpl, path.CertBg, path.CertColor, path.CertPdfURL,
			path.CertNameX, path.CertNameY, path.CertDateX, path.CertDateY,
			path.CertIDX, path.CertIDY, path.CertFontSize)
	}
	return tpl
}

func overlay(tpl *Template, bg, color, pdfURL string, nameX, nameY, dateX, dateY, idX, idY float64, fontSize int) {
	if bg != "" {
		tpl.BackgroundImage = bg
	}
	if color != "" {
		tpl.PrimaryColor = color
	}
	if pdfURL != "" {
		tpl.PdfURL = pdfURL
	}
	if nameX != 0 {
		tpl.NameX = nameX
	}
	if nameY != 0 {
		tpl.NameY = nameY
	}
	if dateX != 0 {
		tpl.DateX = dateX
	}
	if dateY != 0 {
		tpl.DateY = dateY
	}
	if idX != 0 {
		tpl.IDX = idX
	}
	if idY != 0 {
		tpl.IDY = idY
	}
	if fontSize != 0 {
		tpl.FontSize = fontSize
	}
}

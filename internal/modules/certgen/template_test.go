package certgen

import (
	"testing"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

func TestResolveTemplateDefaults(t *testing.T) {
	tpl := ResolveTemplate(nil, nil)
	if tpl.PrimaryColor != "#2563eb" {
		t.Fatalf("expected default color, got %q", tpl.PrimaryColor)
	}
	if tpl.FontSize != 30 {
		t.Fatalf("expected default font size 30, got %d", tpl.FontSize)
	}
	if tpl.PdfURL != "" || tpl.BackgroundImage != "" {
		t.Fatalf("expected no assets by default")
	}
}

func TestResolveTemplatePathOverridesGlobal(t *testing.T) {
	global := &domain.CertificateTemplate{
		BackgroundImage: "global-bg.png",
		PrimaryColor:    "#111111",
		CertNameX:       100,
		CertNameY:       400,
		CertFontSize:    24,
	}
	path := &domain.LearningPath{
		CertColor: "#ff0000",
		CertNameX: 250,
	}

	tpl := ResolveTemplate(global, path)

	if tpl.PrimaryColor != "#ff0000" {
		t.Fatalf("path color should win, got %q", tpl.PrimaryColor)
	}
	if tpl.NameX != 250 {
		t.Fatalf("path name x should win, got %v", tpl.NameX)
	}
	if tpl.NameY != 400 {
		t.Fatalf("unset path name y should fall back to global, got %v", tpl.NameY)
	}
	if tpl.BackgroundImage != "global-bg.png" {
		t.Fatalf("unset path background should fall back to global, got %q", tpl.BackgroundImage)
	}
	if tpl.FontSize != 24 {
		t.Fatalf("unset path font size should fall back to global, got %d", tpl.FontSize)
	}
}

func TestResolveTemplateGlobalOnly(t *testing.T) {
	global := &domain.CertificateTemplate{CertPdfURL: "templates/cert.pdf"}
	tpl := ResolveTemplate(global, &domain.LearningPath{})
	if tpl.PdfURL != "templates/cert.pdf" {
		t.Fatalf("expected global pdf url, got %q", tpl.PdfURL)
	}
	if tpl.PrimaryColor != "#2563eb" {
		t.Fatalf("expected default color, got %q", tpl.PrimaryColor)
	}
}

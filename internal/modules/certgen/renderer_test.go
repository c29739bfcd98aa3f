package certgen

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"testing"
	"time"

	"github.com/fogleman/gg"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

type mapSource map[string][]byte

func (m mapSource) Fetch(_ context.Context, ref string) ([]byte, error) {
	b, ok := m[ref]
	if !ok {
		return nil, fmt.Errorf("no asset %q", ref)
	}
	return b, nil
}

func testRenderer(t *testing.T, src mapSource) *Renderer {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	r, err := NewRenderer(log, DefaultRenderConfig(), src)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func testInput() Input {
	return Input{
		LearnerName:   "Ada",
		CourseTitle:   "IoT Fundamentals",
		CertificateID: "AIOT-1a2b-deadbeef",
		IssuedAt:      time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func backgroundPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		t.Fatalf("encode background: %v", err)
	}
	return buf.Bytes()
}

func TestRenderBuiltinDeterministic(t *testing.T) {
	r := testRenderer(t, mapSource{})
	tpl := ResolveTemplate(nil, nil)

	first, err := r.Render(context.Background(), tpl, testInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := r.Render(context.Background(), tpl, testInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if first.ContentType != "image/png" {
		t.Fatalf("expected image/png, got %q", first.ContentType)
	}
	if !bytes.Equal(first.Bytes, second.Bytes) {
		t.Fatalf("same template and input produced different bytes")
	}
}

func TestRenderImageOverlayDeterministic(t *testing.T) {
	src := mapSource{"bg.png": backgroundPNG(t, 800, 600)}
	r := testRenderer(t, src)
	tpl := Template{
		BackgroundImage: "bg.png",
		PrimaryColor:    "#2563eb",
		NameX:           100,
		NameY:           400,
		FontSize:        30,
	}

	first, err := r.Render(context.Background(), tpl, testInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := r.Render(context.Background(), tpl, testInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(first.Bytes, second.Bytes) {
		t.Fatalf("same template and input produced different bytes")
	}
}

func TestRenderFallsBackWhenAssetMissing(t *testing.T) {
	r := testRenderer(t, mapSource{})
	tpl := Template{BackgroundImage: "gone.png", PrimaryColor: "#2563eb", FontSize: 30}

	out, err := r.Render(context.Background(), tpl, testInput())
	if err != nil {
		t.Fatalf("render should fall back, got %v", err)
	}
	if out.ContentType != "image/png" {
		t.Fatalf("expected built-in png, got %q", out.ContentType)
	}
	if len(out.Bytes) == 0 {
		t.Fatalf("expected rendered bytes")
	}
}

func TestRenderFallsBackOnBadPdfTemplate(t *testing.T) {
	src := mapSource{"cert.pdf": []byte("not a pdf at all")}
	r := testRenderer(t, src)
	tpl := Template{PdfURL: "cert.pdf", PrimaryColor: "#2563eb", FontSize: 30}

	out, err := r.Render(context.Background(), tpl, testInput())
	if err != nil {
		t.Fatalf("render should fall back, got %v", err)
	}
	if out.ContentType != "image/png" {
		t.Fatalf("expected built-in png fallback, got %q", out.ContentType)
	}
}

func TestClampCoord(t *testing.T) {
	r := testRenderer(t, mapSource{})

	if got := r.clampCoord("name.x", -50, 800); got != 0 {
		t.Fatalf("negative should clamp to 0, got %v", got)
	}
	if got := r.clampCoord("name.x", 5000, 800); got != 800 {
		t.Fatalf("off-page should clamp to max, got %v", got)
	}
	if got := r.clampCoord("name.x", 120, 800); got != 120 {
		t.Fatalf("in-range should pass through, got %v", got)
	}
}

func TestParseHexColor(t *testing.T) {
	c := parseHexColor("#2563eb")
	if c.R != 0x25 || c.G != 0x63 || c.B != 0xeb {
		t.Fatalf("unexpected rgb: %+v", c)
	}
	short := parseHexColor("#f00")
	if short.R != 0xff || short.G != 0 || short.B != 0 {
		t.Fatalf("short form parsed wrong: %+v", short)
	}
	fallback := parseHexColor("blue")
	if fallback.R != 0x25 || fallback.G != 0x63 || fallback.B != 0xeb {
		t.Fatalf("invalid color should fall back to default, got %+v", fallback)
	}
}

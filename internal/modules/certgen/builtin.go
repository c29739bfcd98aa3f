package certgen

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
)

// Built-in layout canvas, in pixels. Landscape, roughly A4 proportions.
const (
	builtinW = 1200
	builtinH = 848
)

// renderBuiltin draws the fallback certificate: white page, accent bars top
// and bottom, centered text. It needs no external assets, so it always
// succeeds as long as the font parsed at startup.
func (r *Renderer) renderBuiltin(tpl Template, in Input) (Output, error) {
	accent := parseHexColor(tpl.PrimaryColor)
	gray := color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	dark := color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}

	dc := gg.NewContext(builtinW, builtinH)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(accent)
	dc.DrawRectangle(0, 0, builtinW, 14)
	dc.Fill()
	dc.DrawRectangle(0, builtinH-14, builtinW, 14)
	dc.Fill()

	cx := float64(builtinW) / 2

	dc.SetFontFace(r.fonts.face(30))
	dc.SetColor(gray)
	dc.DrawStringAnchored("CERTIFICATE OF COMPLETION", cx, 180, 0.5, 0.5)

	dc.SetFontFace(r.fonts.face(22))
	dc.DrawStringAnchored("This certificate is proudly presented to", cx, 280, 0.5, 0.5)

	dc.SetFontFace(r.fonts.face(64))
	dc.SetColor(accent)
	dc.DrawStringAnchored(in.LearnerName, cx, 370, 0.5, 0.5)

	dc.SetFontFace(r.fonts.face(22))
	dc.SetColor(gray)
	dc.DrawStringAnchored("for successfully completing", cx, 450, 0.5, 0.5)

	dc.SetFontFace(r.fonts.face(36))
	dc.SetColor(dark)
	dc.DrawStringAnchored(in.CourseTitle, cx, 510, 0.5, 0.5)

	dc.SetFontFace(r.fonts.face(20))
	dc.SetColor(gray)
	dc.DrawStringAnchored(issueDate(in.IssuedAt), cx, 620, 0.5, 0.5)
	dc.DrawStringAnchored(in.CertificateID, cx, 770, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return Output{}, fmt.Errorf("encode certificate png: %w", err)
	}
	return Output{Bytes: buf.Bytes(), ContentType: "image/png"}, nil
}

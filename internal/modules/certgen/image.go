package certgen

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
)

// renderImage stamps the certificate text onto a raster background. Template
// coordinates use a bottom-left origin, same as the PDF path, so the y axis
// is flipped before drawing.
func (r *Renderer) renderImage(tpl Template, background []byte, in Input) (Output, error) {
	img, _, err := image.Decode(bytes.NewReader(background))
	if err != nil {
		return Output{}, fmt.Errorf("decode background image: %w", err)
	}

	dc := gg.NewContextForImage(img)
	w := float64(dc.Width())
	h := float64(dc.Height())

	dc.SetFontFace(r.fonts.face(float64(tpl.FontSize)))
	dc.SetColor(parseHexColor(tpl.PrimaryColor))

	draw := func(text, label string, x, y float64) {
		cx := r.clampCoord(label+".x", x, w)
		cy := r.clampCoord(label+".y", y, h)
		dc.DrawString(text, cx, h-cy)
	}

	draw(in.LearnerName, "name", tpl.NameX, tpl.NameY)
	if tpl.DateX != 0 || tpl.DateY != 0 {
		draw(issueDate(in.IssuedAt), "date", tpl.DateX, tpl.DateY)
	}
	if tpl.IDX != 0 || tpl.IDY != 0 {
		draw(in.CertificateID, "id", tpl.IDX, tpl.IDY)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return Output{}, fmt.Errorf("encode certificate png: %w", err)
	}
	return Output{Bytes: buf.Bytes(), ContentType: "image/png"}, nil
}

package certgen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signintech/gopdf"
)

// renderPDF overlays the certificate text on the first page of a PDF
// template. The source bytes are never modified; the template page is
// imported into a fresh document. Template coordinates use a bottom-left
// origin while gopdf positions from the top-left, hence the y flip.
func (r *Renderer) renderPDF(tpl Template, src []byte, in Input) (out Output, err error) {
	// The underlying page importer panics on malformed PDFs.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("import pdf template: %v", rec)
		}
	}()

	pageW := r.cfg.Page.Width
	pageH := r.cfg.Page.Height

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: pageW, H: pageH}})
	pdf.AddPage()

	rs := io.ReadSeeker(bytes.NewReader(src))
	page := pdf.ImportPageStream(&rs, 1, "/MediaBox")
	if page <= 0 {
		return Output{}, fmt.Errorf("import pdf template: no first page")
	}
	pdf.UseImportedTemplate(page, 0, 0, pageW, pageH)

	if err := pdf.AddTTFFontData("certificate", r.fonts.bytes); err != nil {
		return Output{}, fmt.Errorf("embed font: %w", err)
	}
	if err := pdf.SetFont("certificate", "", tpl.FontSize); err != nil {
		return Output{}, fmt.Errorf("select font: %w", err)
	}
	c := parseHexColor(tpl.PrimaryColor)
	pdf.SetTextColor(c.R, c.G, c.B)

	size := float64(tpl.FontSize)
	draw := func(text, label string, x, y float64) error {
		cx := r.clampCoord(label+".x", x, pageW)
		cy := r.clampCoord(label+".y", y, pageH-size)
		pdf.SetXY(cx, pageH-cy-size)
		return pdf.Cell(nil, text)
	}

	if err := draw(in.LearnerName, "name", tpl.NameX, tpl.NameY); err != nil {
		return Output{}, fmt.Errorf("draw name: %w", err)
	}
	if tpl.DateX != 0 || tpl.DateY != 0 {
		if err := draw(issueDate(in.IssuedAt), "date", tpl.DateX, tpl.DateY); err != nil {
			return Output{}, fmt.Errorf("draw date: %w", err)
		}
	}
	if tpl.IDX != 0 || tpl.IDY != 0 {
		if err := draw(in.CertificateID, "id", tpl.IDX, tpl.IDY); err != nil {
			return Output{}, fmt.Errorf("draw id: %w", err)
		}
	}

	return Output{Bytes: pdf.GetBytesPdf(), ContentType: "application/pdf"}, nil
}

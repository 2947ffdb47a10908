package pdfexport

import (
	"bytes"
	_ "embed"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	Title    = "Job Description"
	FontName = "DejaVuSansCondensed"
)

// шрифты DejaVu (свободная лицензия), встроены чтобы кириллица и типографские символы не терялись
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
)

func GenerateJobDescription(description string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateJobDescription panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, true)
	pdf.AddUTF8FontFromBytes(FontName, "", fontRegular)
	pdf.AddUTF8FontFromBytes(FontName, "B", fontBold)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.AddPage()

	pdf.SetFont(FontName, "B", 16)
	pdf.CellFormat(0, 10, Title, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(FontName, "", 11)
	_, lineHt := pdf.GetFontSize()
	pdf.MultiCell(0, lineHt*1.5, description, "", "L", false)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// ReportRenderer produces a downloadable document from a denormalized
// report row. It never touches the database; swapping the document format
// only means swapping the implementation.
type ReportRenderer interface {
	Render(row *ReportRow) ([]byte, error)
	Filename(row *ReportRow) string
}

// PDFRenderer renders the compliance summary as an A4 PDF.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Filename builds the deterministic download name from the project code and
// the fiscal year.
func (PDFRenderer) Filename(row *ReportRow) string {
	return fmt.Sprintf("Reporte_Cumplimiento_%s_%d.pdf", row.Cod, row.Anio)
}

func (PDFRenderer) Render(row *ReportRow) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Reporte de Cumplimiento %s %d", row.Cod, row.Anio), true)
	// Core fonts are cp1252; the translator keeps accented Spanish text intact.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Reporte de Cumplimiento Institucional", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Resultados anuales (%d)", row.Anio), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeField := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 7, tr(label), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 7, tr(value), "1", "L", false)
	}

	writeField("Institución", row.Institucion)
	writeField("Proyecto", row.Proyecto)
	writeField("Código", row.Cod)
	writeField("Medida", row.Medida)
	writeField("Eje", row.Eje)
	writeField("Meta", fmt.Sprintf("%.2f", row.Meta))
	writeField("Cumplimiento", fmt.Sprintf("%.2f", row.Cumplimiento))
	writeField("Porcentaje realizado", fmt.Sprintf("%.2f%%", row.PorcentajeAccionesRealizadas))

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Aclaraciones", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(row.Aclaraciones), "", "L", false)

	if row.Justificacion != nil {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr("Justificación"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, tr(*row.Justificacion), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

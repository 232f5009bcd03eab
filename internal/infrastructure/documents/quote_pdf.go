package documents

import (
	"bytes"
	"fmt"
	"log"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const companyName = "MeshGuard Mosquito Screens"

// QuotePDFGenerator renders a one-page quote with the core Helvetica font, so no
// font files are needed at runtime.
type QuotePDFGenerator struct {
	now func() time.Time
}

var _ interfaces.IQuoteDocumentGenerator = (*QuotePDFGenerator)(nil)

func NewQuotePDFGenerator() *QuotePDFGenerator {
	return &QuotePDFGenerator{now: time.Now}
}

func (g *QuotePDFGenerator) Generate(q entities.QuoteWithOwner) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quote "+q.ID, false)
	pdf.SetAuthor(companyName, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, companyName)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Quote %s - %s", q.ID, q.CreatedAt.Format("02 Jan 2006")))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Status: "+strings.ToUpper(string(q.Status)))
	pdf.Ln(6)
	if q.OwnerName != "" || q.OwnerEmail != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Customer: %s %s %s", q.OwnerName, q.OwnerEmail, q.OwnerPhone))
		pdf.Ln(6)
	}
	if q.Location != "" {
		pdf.Cell(0, 6, "Location: "+trim(q.Location, 80))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(50, 7, "Screen")
	pdf.Cell(40, 7, "Size (m)")
	pdf.Cell(25, 7, "Windows")
	pdf.Cell(35, 7, "Unit / m2")
	pdf.Cell(35, 7, "Total (KES)")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(50, 6, trim(fmt.Sprintf("%s / %s", q.MeshType, q.MaterialType), 28))
	pdf.Cell(40, 6, fmt.Sprintf("%.2f x %.2f", q.Width, q.Height))
	pdf.Cell(25, 6, fmt.Sprintf("%d", q.WindowCount))
	pdf.Cell(35, 6, fmt.Sprintf("%.2f", unitPrice(q.Quote)))
	pdf.Cell(35, 6, fmt.Sprintf("%.2f", q.TotalPrice))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total: KES %.2f", q.TotalPrice))
	pdf.Ln(8)

	if q.Notes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "Notes: "+q.Notes, "", "L", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, "Pay by M-Pesa from your dashboard. Installation within 24-48 hours in served areas.")
	pdf.Ln(5)
	pdf.Cell(0, 5, "Generated: "+g.now().UTC().Format(time.RFC3339))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[quote][pdf] output failed quote_id=%s err=%v", q.ID, err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func unitPrice(q entities.Quote) float64 {
	area := q.Width * q.Height * float64(q.WindowCount)
	if area <= 0 {
		return 0
	}
	return q.TotalPrice / area
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

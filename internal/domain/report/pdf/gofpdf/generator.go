package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/report"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(s report.Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Summary", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Booking Summary")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s .. %s (%s)", s.StartDate, s.EndDate, s.GroupBy))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Bookings: %d  Revenue: %d", s.BookingCount, s.TotalRevenue))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(40, 7, "Period")
	pdf.Cell(35, 7, "Bookings")
	pdf.Cell(35, 7, "Nights")
	pdf.Cell(40, 7, "Revenue")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, b := range s.Buckets {
		pdf.Cell(40, 6, b.Period)
		pdf.Cell(35, 6, fmt.Sprintf("%d", b.BookingCount))
		pdf.Cell(35, 6, fmt.Sprintf("%d", b.NightCount))
		pdf.Cell(40, 6, fmt.Sprintf("%d", b.Revenue))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().UTC().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("report pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

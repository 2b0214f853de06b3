package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"samayas/internal/domain"
	"samayas/internal/domain/models"
	"samayas/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the presented fare summary as a downloadable PDF
// quote, so customers can keep or forward the estimate before confirming.
type DocsService struct {
	businessName string
	now          func() time.Time
}

func NewDocsService(businessName string) *DocsService {
	return &DocsService{businessName: businessName, now: time.Now}
}

// GenerateQuote builds the PDF for one summary. Only distance-billed trips
// have a summary, so other-service requests are rejected upstream.
func (s *DocsService) GenerateQuote(sessionID string, sum Summary) ([]byte, string, error) {
	if !sum.Request.Category.BillsByDistance() {
		return nil, "", domain.ValidationError{Field: "category", Msg: "no fare quote for this service"}
	}
	return s.buildQuotePDF(sessionID, sum)
}

func (s *DocsService) buildQuotePDF(sessionID string, sum Summary) ([]byte, string, error) {
	req, fare := sum.Request, sum.Fare

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fare Quote", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FARE QUOTE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Quoted by : "+s.businessName)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Quote ref : QT-"+quoteRef(sessionID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued    : "+s.now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trip details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Customer  : %s (%s)", blankDash(req.CustomerName), blankDash(utils.StripSpaces(req.CustomerPhone))),
		fmt.Sprintf("Service   : %s", req.Category.Display()),
		fmt.Sprintf("Vehicle   : %s", blankDash(req.VehicleClass.Display())),
		fmt.Sprintf("Route     : %s -> %s", blankDash(req.PickupLocation), blankDash(req.DropLocation)),
		fmt.Sprintf("Pickup on : %s %s", blankDash(utils.DisplayDate(req.Date)), req.FullTime()),
	}
	if req.Category == models.TripRoundTrip {
		lines = append(lines, fmt.Sprintf("Return on : %s", blankDash(utils.DisplayDate(req.ReturnDate))))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Fare breakdown:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	breakdown := []string{
		fmt.Sprintf("Estimated distance : %d km", fare.DistanceKm),
		fmt.Sprintf("Billed minimum     : %d km x %s/km = %s", fare.MinimumKm, pdfRupees(fare.RatePerKm), pdfRupees(fare.BaseFare)),
		fmt.Sprintf("Driver bata        : %s", pdfRupees(fare.DriverAllowance)),
	}
	for _, line := range breakdown {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Total estimate: "+pdfRupees(fare.FinalAmount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: this is an estimate. Tolls, parking and inter-state permit charges are billed separately at actuals.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "render fare quote", Err: err}
	}

	filename := fmt.Sprintf("QUOTE_%s_%s.pdf", quoteRef(sessionID), safeFilenamePart(req.CustomerName))
	return buf.Bytes(), filename, nil
}

func quoteRef(sessionID string) string {
	if len(sessionID) > 8 {
		return strings.ToUpper(sessionID[:8])
	}
	return strings.ToUpper(sessionID)
}

func blankDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// pdfRupees renders an amount with an ASCII currency marker; the core PDF
// fonts are cp1252 and cannot encode the rupee sign.
func pdfRupees(v int64) string {
	return strings.Replace(utils.FormatRupees(v), "₹", "Rs.", 1)
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

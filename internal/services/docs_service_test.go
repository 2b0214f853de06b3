package services

import (
	"bytes"
	"strings"
	"testing"

	"samayas/internal/domain"
	"samayas/internal/domain/models"
)

func TestGenerateQuote(t *testing.T) {
	svc := NewDocsService("Samayas Travels")
	sum := Summary{
		Request: models.BookingRequest{
			Category:       models.TripOneWay,
			VehicleClass:   models.VehicleSedan,
			PickupLocation: "Chennai Airport",
			DropLocation:   "Madurai",
			Date:           "2026-03-12",
			Time:           "09:30",
			Period:         "AM",
			CustomerName:   "Arun Kumar",
			CustomerPhone:  "9876543210",
		},
		Fare: models.FareBreakdown{
			DistanceKm: 180, MinimumKm: 130, RatePerKm: 14,
			BaseFare: 1820, DriverAllowance: 400, FinalAmount: 2220,
		},
	}

	pdfBytes, filename, err := svc.GenerateQuote("abcdef0123456789", sum)
	if err != nil {
		t.Fatalf("GenerateQuote: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if !strings.HasPrefix(filename, "QUOTE_ABCDEF01_") || !strings.HasSuffix(filename, ".pdf") {
		t.Errorf("filename = %q", filename)
	}
	if strings.ContainsAny(filename, " /\\") {
		t.Errorf("filename not shell safe: %q", filename)
	}
}

func TestGenerateQuoteRejectsOtherService(t *testing.T) {
	svc := NewDocsService("Samayas Travels")
	sum := Summary{Request: models.BookingRequest{Category: models.TripOtherService}}

	_, _, err := svc.GenerateQuote("abc", sum)
	if !domain.IsValidation(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestPdfRupeesIsASCII(t *testing.T) {
	got := pdfRupees(222000)
	if got != "Rs. 2,22,000" {
		t.Errorf("pdfRupees = %q", got)
	}
	for _, r := range got {
		if r > 127 {
			t.Errorf("non-ASCII rune %q in %q", r, got)
		}
	}
}

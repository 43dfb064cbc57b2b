package brochure

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/FACorreiaa/smart-tour/internal/types"
)

type itinerary struct {
	Preferences     types.UserPreferences
	Recommendations string
	Places          []types.Place
	GeneratedAt     time.Time
}

// renderItinerary lays out an A4 page with the trip answers, the destination
// table and the raw recommendation text. Core fonts only cover cp1252, so text
// goes through the translator first.
func renderItinerary(it itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8, fmt.Sprintf("Generated by Smart Tour - page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// header bar
	pdf.SetFillColor(65, 105, 225)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(120, 10, "Smart Tour", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Your personalised India travel plan", "", 1, "L", false, 0, "")
	pdf.SetY(36)
	pdf.SetTextColor(0, 0, 0)

	section := func(title string) {
		pdf.SetFillColor(17, 24, 39)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(120, 7, tr(value), "", 1, "L", false, 0, "")
	}

	section("Trip Preferences")
	row("Place type", it.Preferences.PlaceType)
	row("Budget", it.Preferences.Budget)
	row("Season", it.Preferences.Season)
	row("Travelling from", it.Preferences.Source)
	row("Generated", it.GeneratedAt.Format("02 Jan 2006, 15:04"))
	pdf.Ln(4)

	if len(it.Places) > 0 {
		section(fmt.Sprintf("Destinations (%d)", len(it.Places)))
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(235, 240, 250)
		pdf.CellFormat(70, 7, "Place", "B", 0, "L", true, 0, "")
		pdf.CellFormat(60, 7, "State", "B", 0, "L", true, 0, "")
		pdf.CellFormat(40, 7, "Coordinates", "B", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, p := range it.Places {
			pdf.CellFormat(70, 7, tr(p.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, tr(p.State), "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 7, fmt.Sprintf("%.4f, %.4f", p.Lat, p.Lng), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if text := strings.TrimSpace(it.Recommendations); text != "" {
		section("Recommendations")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, tr(text), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func sampleResult() *domain.ParseResult {
	calculated := 5010
	return &domain.ParseResult{
		ExtractedFields: domain.ExtractedFields{
			DocumentType:  strPtr("계량증명서"),
			Date:          strPtr("2026-02-02"),
			Time:          strPtr("05:37:55"),
			VehicleNumber: strPtr("80구8713"),
			TotalWeight:   intPtr(12480),
			EmptyWeight:   intPtr(7470),
			NetWeight:     intPtr(5010),
			Customer:      strPtr("한국상사"),
			ProductName:   strPtr("고철"),
			Issuer:        strPtr("한국중공업(주)"),
			GPS:           &domain.GPSCoordinates{Latitude: 37.5665, Longitude: 126.978},
		},
		Confidence: 0.95,
		Validation: domain.ValidationReport{
			OverallStatus:  domain.StatusValid,
			OverallMessage: "all validated fields are consistent",
			Weight: domain.FieldOutcome{
				Status:              domain.StatusValid,
				Message:             "weight check passed (difference 0kg)",
				CalculatedNetWeight: &calculated,
			},
		},
	}
}

func TestBatchReportRoundTrip(t *testing.T) {
	items := []domain.BatchItemResult{
		{Filename: "cert.json", Success: true, Result: sampleResult()},
		{Filename: "broken.json", Error: "file is empty"},
	}

	raw, err := BatchReport(items)
	if err != nil {
		t.Fatalf("BatchReport() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != sheetName {
		t.Fatalf("sheets = %v, want [%s]", sheets, sheetName)
	}

	cell := func(ref string) string {
		t.Helper()
		v, err := f.GetCellValue(sheetName, ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "Filename" {
		t.Fatalf("A1 = %q, want Filename", got)
	}
	if got := cell("A2"); got != "cert.json" {
		t.Fatalf("A2 = %q, want cert.json", got)
	}
	if got := cell("C2"); got != "VALID" {
		t.Fatalf("C2 = %q, want VALID", got)
	}
	if got := cell("E2"); got != "계량증명서" {
		t.Fatalf("E2 = %q", got)
	}
	if got := cell("H2"); got != "80구8713" {
		t.Fatalf("H2 = %q", got)
	}
	if got := cell("I2"); got != "12480" {
		t.Fatalf("I2 = %q, want 12480", got)
	}
	if got := cell("L2"); got != "5010" {
		t.Fatalf("L2 = %q, want calculated 5010", got)
	}

	if got := cell("A3"); got != "broken.json" {
		t.Fatalf("A3 = %q, want broken.json", got)
	}
	if got := cell("S3"); got != "file is empty" {
		t.Fatalf("S3 = %q, want the per-file error", got)
	}
	if got := cell("C3"); got != "" {
		t.Fatalf("C3 = %q, want blank status for a failed file", got)
	}
}

func TestBatchReportEmptyBatch(t *testing.T) {
	raw, err := BatchReport(nil)
	if err != nil {
		t.Fatalf("BatchReport(nil) error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue(sheetName, "A1"); got != "Filename" {
		t.Fatalf("A1 = %q, want header row even with no items", got)
	}
	if got, _ := f.GetCellValue(sheetName, "A2"); got != "" {
		t.Fatalf("A2 = %q, want empty", got)
	}
}

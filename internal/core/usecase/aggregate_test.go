package usecase

import (
	"testing"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

func TestOverallStatusSeverityOrder(t *testing.T) {
	valid := domain.Valid("ok")
	warning := domain.Warning("check")
	invalid := domain.Invalid("bad")
	cannot := domain.CannotValidate("missing")
	calculated := domain.Calculated(5010, "derived")

	tests := []struct {
		name     string
		outcomes []domain.FieldOutcome
		want     domain.Status
	}{
		{"all valid", []domain.FieldOutcome{valid, valid, valid, valid}, domain.StatusValid},
		{"invalid dominates warning", []domain.FieldOutcome{warning, invalid, valid, valid}, domain.StatusInvalid},
		{"invalid dominates cannot validate", []domain.FieldOutcome{cannot, valid, invalid, valid}, domain.StatusInvalid},
		{"warning dominates cannot validate", []domain.FieldOutcome{cannot, warning, valid, valid}, domain.StatusWarning},
		{"cannot validate dominates valid", []domain.FieldOutcome{valid, cannot, valid, valid}, domain.StatusCannotValidate},
		{"calculated counts as a pass", []domain.FieldOutcome{calculated, valid, valid, valid}, domain.StatusValid},
		{"calculated does not mask a warning", []domain.FieldOutcome{calculated, warning, valid, valid}, domain.StatusWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overallStatus(tt.outcomes...); got != tt.want {
				t.Fatalf("overallStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCombineDateTime(t *testing.T) {
	tests := []struct {
		name        string
		date        domain.FieldOutcome
		clock       domain.FieldOutcome
		wantStatus  domain.Status
		wantMessage string
	}{
		{
			"both valid",
			domain.Valid("date is valid: 2026-02-02"),
			domain.Valid("time is valid: 05:37:55"),
			domain.StatusValid,
			"date is valid: 2026-02-02; time is valid: 05:37:55",
		},
		{
			"missing time degrades the pair",
			domain.Valid("date is valid: 2026-02-02"),
			domain.CannotValidate("time is missing"),
			domain.StatusCannotValidate,
			"date is valid: 2026-02-02; time is missing",
		},
		{
			"invalid date dominates",
			domain.Invalid("date is not a valid calendar date: 2026-02-30"),
			domain.Valid("time is valid: 05:37:55"),
			domain.StatusInvalid,
			"date is not a valid calendar date: 2026-02-30; time is valid: 05:37:55",
		},
		{
			"warning date dominates missing time",
			domain.Warning("date is in the future: 2030-01-01"),
			domain.CannotValidate("time is missing"),
			domain.StatusWarning,
			"date is in the future: 2030-01-01; time is missing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := combineDateTime(tt.date, tt.clock)
			if got.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestBuildReportOverallMessage(t *testing.T) {
	report := buildReport(
		domain.Valid("ok"), domain.Valid("ok"), domain.Valid("ok"), domain.Valid("ok"))
	if report.OverallStatus != domain.StatusValid {
		t.Fatalf("overallStatus = %s, want VALID", report.OverallStatus)
	}
	if report.OverallMessage != "all validated fields are consistent" {
		t.Fatalf("overallMessage = %q", report.OverallMessage)
	}

	report = buildReport(
		domain.Invalid("bad"), domain.Valid("ok"), domain.Warning("check"), domain.Valid("ok"))
	if report.OverallStatus != domain.StatusInvalid {
		t.Fatalf("overallStatus = %s, want INVALID", report.OverallStatus)
	}
	if report.OverallMessage != "one or more fields failed validation" {
		t.Fatalf("overallMessage = %q", report.OverallMessage)
	}
}

package usecase

import (
	"strings"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

// Severity order for the overall verdict. Checked first to last across all
// categories; first match wins. CALCULATED never appears here — a derived
// weight counts as a pass.
var severityOrder = []domain.Status{
	domain.StatusInvalid,
	domain.StatusWarning,
	domain.StatusCannotValidate,
}

var overallMessages = map[domain.Status]string{
	domain.StatusValid:          "all validated fields are consistent",
	domain.StatusWarning:        "all fields parsed but some were flagged for review",
	domain.StatusInvalid:        "one or more fields failed validation",
	domain.StatusCannotValidate: "not enough data to validate the certificate",
}

func overallStatus(outcomes ...domain.FieldOutcome) domain.Status {
	for _, status := range severityOrder {
		for _, outcome := range outcomes {
			if outcome.Status == status {
				return status
			}
		}
	}
	return domain.StatusValid
}

// combineDateTime folds the date and time sub-validations into the single
// date/time category before it joins the other three.
func combineDateTime(date, clock domain.FieldOutcome) domain.FieldOutcome {
	status := date.Status
	if clock.Status.Severity() > status.Severity() {
		status = clock.Status
	}
	if status.Severity() == 0 {
		status = domain.StatusValid
	}

	var parts []string
	for _, message := range []string{date.Message, clock.Message} {
		if message != "" {
			parts = append(parts, message)
		}
	}
	return domain.FieldOutcome{Status: status, Message: strings.Join(parts, "; ")}
}

func buildReport(weight, dateTime, gps, vehicle domain.FieldOutcome) domain.ValidationReport {
	overall := overallStatus(weight, dateTime, gps, vehicle)
	return domain.ValidationReport{
		OverallStatus:  overall,
		OverallMessage: overallMessages[overall],
		Weight:         weight,
		DateTime:       dateTime,
		GPS:            gps,
		Vehicle:        vehicle,
	}
}

package validate

import (
	"strings"
	"time"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"

	// Certificates older than this are suspicious but not impossible.
	maxDateAgeYears = 10
)

// Date checks a YYYY-MM-DD string against the real calendar and against the
// current date: future dates and dates older than ten years are warnings.
func Date(value string) domain.FieldOutcome {
	return dateAt(value, time.Now())
}

func dateAt(value string, now time.Time) domain.FieldOutcome {
	if strings.TrimSpace(value) == "" {
		return domain.CannotValidate("date is missing")
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return domain.Invalid("date is not a valid calendar date: " + value)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.After(today) {
		return domain.Warning("date is in the future: " + value)
	}
	if parsed.Before(today.AddDate(-maxDateAgeYears, 0, 0)) {
		return domain.Warning("date is more than 10 years old: " + value)
	}
	return domain.Valid("date is valid: " + value)
}

// Time checks a strict HH:MM:SS string. There is no warning tier for time.
func Time(value string) domain.FieldOutcome {
	if strings.TrimSpace(value) == "" {
		return domain.CannotValidate("time is missing")
	}
	if _, err := time.Parse(timeLayout, value); err != nil {
		return domain.Invalid("time is not a valid HH:MM:SS value: " + value)
	}
	return domain.Valid("time is valid: " + value)
}

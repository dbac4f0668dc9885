package domain

// Status is the outcome tag of a single validated field category.
type Status string

const (
	StatusValid          Status = "VALID"
	StatusWarning        Status = "WARNING"
	StatusInvalid        Status = "INVALID"
	StatusCannotValidate Status = "CANNOT_VALIDATE"
	// StatusCalculated is weight-only: the net weight could be derived but
	// there was no reported value to compare against.
	StatusCalculated Status = "CALCULATED"
)

// Severity ranks statuses for aggregation. StatusCalculated ranks with
// StatusValid: a derivable weight is a pass, just not a cross-checked one.
func (s Status) Severity() int {
	switch s {
	case StatusInvalid:
		return 3
	case StatusWarning:
		return 2
	case StatusCannotValidate:
		return 1
	default:
		return 0
	}
}

// FieldOutcome is the result of validating one field category.
// CalculatedNetWeight is set only by the weight validator.
type FieldOutcome struct {
	Status              Status `json:"status"`
	Message             string `json:"message"`
	CalculatedNetWeight *int   `json:"calculatedNetWeight,omitempty"`
}

func Valid(message string) FieldOutcome {
	return FieldOutcome{Status: StatusValid, Message: message}
}

func Warning(message string) FieldOutcome {
	return FieldOutcome{Status: StatusWarning, Message: message}
}

func Invalid(message string) FieldOutcome {
	return FieldOutcome{Status: StatusInvalid, Message: message}
}

func CannotValidate(message string) FieldOutcome {
	return FieldOutcome{Status: StatusCannotValidate, Message: message}
}

func Calculated(netWeight int, message string) FieldOutcome {
	return FieldOutcome{Status: StatusCalculated, Message: message, CalculatedNetWeight: &netWeight}
}

// WithCalculated attaches the derived net weight to an outcome.
func (o FieldOutcome) WithCalculated(netWeight int) FieldOutcome {
	o.CalculatedNetWeight = &netWeight
	return o
}

// ValidationReport combines the four category outcomes with the overall
// verdict. OverallStatus is always the most severe category status.
type ValidationReport struct {
	OverallStatus  Status       `json:"overallStatus"`
	OverallMessage string       `json:"overallMessage"`
	Weight         FieldOutcome `json:"weight"`
	DateTime       FieldOutcome `json:"dateTime"`
	GPS            FieldOutcome `json:"gps"`
	Vehicle        FieldOutcome `json:"vehicle"`
}

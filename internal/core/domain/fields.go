package domain

import "time"

// ExtractedFields holds the raw values recovered from one certificate text.
// Missing fields stay nil and are omitted from JSON output.
type ExtractedFields struct {
	DocumentType  *string         `json:"documentType,omitempty"`
	Date          *string         `json:"date,omitempty"`
	Time          *string         `json:"time,omitempty"`
	VehicleNumber *string         `json:"vehicleNumber,omitempty"`
	TotalWeight   *int            `json:"totalWeight,omitempty"`
	EmptyWeight   *int            `json:"emptyWeight,omitempty"`
	NetWeight     *int            `json:"netWeight,omitempty"`
	Customer      *string         `json:"customer,omitempty"`
	ProductName   *string         `json:"productName,omitempty"`
	Issuer        *string         `json:"issuer,omitempty"`
	GPS           *GPSCoordinates `json:"gps,omitempty"`
}

// GPSCoordinates is a latitude/longitude pair. Either both values were
// extracted or the whole struct is absent.
type GPSCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ParseResult is the full response for one certificate: the extracted
// fields, the OCR confidence passed through from the source envelope,
// and the validation report.
type ParseResult struct {
	ExtractedFields
	Confidence float64          `json:"confidence"`
	Validation ValidationReport `json:"validation"`
}

// BatchItemResult is the per-file entry of a batch parse. A failed file
// carries an error message instead of a result; it never aborts the batch.
type BatchItemResult struct {
	Filename string       `json:"filename"`
	Success  bool         `json:"success"`
	Result   *ParseResult `json:"result,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// ParseEvent is the audit event published after a certificate is parsed.
type ParseEvent struct {
	EventID       string    `json:"event_id"`
	Source        string    `json:"source,omitempty"`
	DocumentType  string    `json:"document_type,omitempty"`
	OverallStatus Status    `json:"overall_status"`
	Confidence    float64   `json:"confidence"`
	ParsedAt      time.Time `json:"parsed_at"`
}

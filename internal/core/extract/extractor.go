package extract

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

// OCR output scatters whitespace inside Korean words, so every label
// pattern allows \s* between its characters. First match wins; a miss is
// never an error, only an absent field.
var (
	documentTypePattern = regexp.MustCompile(
		`계\s*량\s*증\s*명\s*서|계\s*[근그]\s*표|계\s*량\s*확\s*인\s*서|계\s*량\s*증\s*명\s*표`)

	datePattern = regexp.MustCompile(`(\d{4})[-./](\d{1,2})[-./](\d{1,2})`)

	timePattern = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2})`)

	// Labeled token first, bare plate shape as the fallback alternative.
	vehicleNumberPattern = regexp.MustCompile(
		`(?:차량\s*(?:번호|No\.?)|차\s*번\s*호)[:\s]*([\d가-힣]+)|([0-9]{2,4}[가-힣][0-9]{4})`)

	// Weighing slips often print a HH:MM:SS stamp between the label and the
	// value; the optional group skips it without capturing.
	totalWeightPattern = regexp.MustCompile(
		`총\s*중\s*량[^0-9]*(?:\d{2}:\d{2}:\d{2}\s+)?([\d,]+)\s*(?i:kg)?`)
	emptyWeightPattern = regexp.MustCompile(
		`(?:공\s*차\s*중\s*량|차\s*중\s*량)[^0-9]*(?:\d{2}:\d{2}:\d{2}\s+)?([\d,]+)\s*(?i:kg)?`)
	netWeightPattern = regexp.MustCompile(
		`실\s*중\s*량[^0-9]*([\d,]+)\s*(?i:kg)?`)

	// Customer text runs until the next known label keyword or end of text.
	customerPattern = regexp.MustCompile(
		`(?:거\s*래\s*처|상\s*호)[:\s]*([가-힣a-zA-Z0-9()\s]+?)(?:\s*(?:품|총|공차|실|차량|계량)|$)`)

	productNamePattern = regexp.MustCompile(`품\s*명[:\s]*([가-힣a-zA-Z0-9]+)`)

	// Issuer has no label; the corporate suffix is the only structural cue.
	issuerPattern = regexp.MustCompile(`[가-힣]+(?:\([주株]\)|주식회사)`)

	gpsPattern = regexp.MustCompile(`(\d{2,3}\.\d+)[,\s]+(\d{2,3}\.\d+)`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Extractor locates the ten field categories of a weighbridge certificate
// in normalized OCR text. It keeps no state between calls; the logger is
// used for miss diagnostics only.
type Extractor struct {
	log *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{log: logger}
}

// All runs every extractor over the text and assembles the field set.
func (e *Extractor) All(text string) domain.ExtractedFields {
	return domain.ExtractedFields{
		DocumentType:  e.DocumentType(text),
		Date:          e.Date(text),
		Time:          e.Time(text),
		VehicleNumber: e.VehicleNumber(text),
		TotalWeight:   e.TotalWeight(text),
		EmptyWeight:   e.EmptyWeight(text),
		NetWeight:     e.NetWeight(text),
		Customer:      e.Customer(text),
		ProductName:   e.ProductName(text),
		Issuer:        e.Issuer(text),
		GPS:           e.GPS(text),
	}
}

// DocumentType matches one of the known certificate title variants and
// strips the whitespace OCR injected between the characters.
func (e *Extractor) DocumentType(text string) *string {
	match := documentTypePattern.FindString(text)
	if match == "" {
		e.log.Warn("field_miss", "field", "documentType")
		return nil
	}
	result := whitespaceRun.ReplaceAllString(match, "")
	e.log.Debug("field_extracted", "field", "documentType", "value", result)
	return &result
}

// Date renormalizes any recognized Y-M-D shape to zero-padded YYYY-MM-DD,
// regardless of the separator used on the slip. Calendar validity is the
// validator's job.
func (e *Extractor) Date(text string) *string {
	groups := datePattern.FindStringSubmatch(text)
	if groups == nil {
		e.log.Warn("field_miss", "field", "date")
		return nil
	}
	month, _ := strconv.Atoi(groups[2])
	day, _ := strconv.Atoi(groups[3])
	result := groups[1] + "-" + pad2(month) + "-" + pad2(day)
	e.log.Debug("field_extracted", "field", "date", "value", result)
	return &result
}

// Time recognizes strict HH:MM:SS only; anything looser is not a time value.
func (e *Extractor) Time(text string) *string {
	match := timePattern.FindString(text)
	if match == "" {
		e.log.Debug("field_miss", "field", "time")
		return nil
	}
	e.log.Debug("field_extracted", "field", "time", "value", match)
	return &match
}

func (e *Extractor) VehicleNumber(text string) *string {
	groups := vehicleNumberPattern.FindStringSubmatch(text)
	if groups == nil {
		e.log.Warn("field_miss", "field", "vehicleNumber")
		return nil
	}
	result := groups[1]
	if result == "" {
		result = groups[2]
	}
	result = strings.TrimSpace(result)
	if result == "" {
		e.log.Warn("field_miss", "field", "vehicleNumber")
		return nil
	}
	e.log.Debug("field_extracted", "field", "vehicleNumber", "value", result)
	return &result
}

func (e *Extractor) TotalWeight(text string) *int {
	return e.weight(totalWeightPattern, "totalWeight", text)
}

func (e *Extractor) EmptyWeight(text string) *int {
	return e.weight(emptyWeightPattern, "emptyWeight", text)
}

func (e *Extractor) NetWeight(text string) *int {
	return e.weight(netWeightPattern, "netWeight", text)
}

// weight parses the digit run after a weight label, stripping thousands
// commas. A token that matched but fails to parse degrades to absent.
func (e *Extractor) weight(pattern *regexp.Regexp, field, text string) *int {
	groups := pattern.FindStringSubmatch(text)
	if groups == nil {
		e.log.Warn("field_miss", "field", field)
		return nil
	}
	token := strings.ReplaceAll(groups[1], ",", "")
	value, err := strconv.Atoi(token)
	if err != nil {
		e.log.Warn("field_parse_failed", "field", field, "token", groups[1])
		return nil
	}
	e.log.Debug("field_extracted", "field", field, "value", value)
	return &value
}

func (e *Extractor) Customer(text string) *string {
	groups := customerPattern.FindStringSubmatch(text)
	if groups == nil {
		e.log.Debug("field_miss", "field", "customer")
		return nil
	}
	result := strings.TrimSpace(groups[1])
	if result == "" {
		e.log.Debug("field_miss", "field", "customer")
		return nil
	}
	e.log.Debug("field_extracted", "field", "customer", "value", result)
	return &result
}

func (e *Extractor) ProductName(text string) *string {
	groups := productNamePattern.FindStringSubmatch(text)
	if groups == nil {
		e.log.Debug("field_miss", "field", "productName")
		return nil
	}
	result := groups[1]
	e.log.Debug("field_extracted", "field", "productName", "value", result)
	return &result
}

func (e *Extractor) Issuer(text string) *string {
	match := issuerPattern.FindString(text)
	if match == "" {
		e.log.Debug("field_miss", "field", "issuer")
		return nil
	}
	e.log.Debug("field_extracted", "field", "issuer", "value", match)
	return &match
}

// GPS returns both coordinates or neither; a lone decimal is not a fix.
func (e *Extractor) GPS(text string) *domain.GPSCoordinates {
	groups := gpsPattern.FindStringSubmatch(text)
	if groups == nil {
		e.log.Debug("field_miss", "field", "gps")
		return nil
	}
	lat, errLat := strconv.ParseFloat(groups[1], 64)
	lon, errLon := strconv.ParseFloat(groups[2], 64)
	if errLat != nil || errLon != nil {
		e.log.Warn("field_parse_failed", "field", "gps")
		return nil
	}
	e.log.Debug("field_extracted", "field", "gps", "latitude", lat, "longitude", lon)
	return &domain.GPSCoordinates{Latitude: lat, Longitude: lon}
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/extract"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/ports"
	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/validate"
)

// ParseCertificateUseCase runs the full pipeline for one certificate:
// envelope → normalize → extract → validate → aggregate. Every invocation
// is a pure function of its input; nothing is retained between calls.
type ParseCertificateUseCase struct {
	reader    ports.EnvelopeReader
	extractor *extract.Extractor
	publisher ports.EventPublisher
	log       *slog.Logger
}

func NewParseCertificateUseCase(
	reader ports.EnvelopeReader,
	extractor *extract.Extractor,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *ParseCertificateUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseCertificateUseCase{
		reader:    reader,
		extractor: extractor,
		publisher: publisher,
		log:       logger,
	}
}

// ParseEnvelope reads one OCR JSON envelope and returns the parse result.
// The only error tier is a malformed envelope; extraction and validation
// always produce a result.
func (uc *ParseCertificateUseCase) ParseEnvelope(ctx context.Context, source string, envelope io.Reader) (*domain.ParseResult, error) {
	text, confidence, err := uc.reader.Read(envelope)
	if err != nil {
		return nil, err
	}

	result := uc.ParseText(text, confidence)
	uc.log.Info("certificate_parsed",
		"source", source,
		"overall_status", result.Validation.OverallStatus,
		"confidence", result.Confidence,
	)
	uc.publishEvent(ctx, source, result)
	return result, nil
}

// ParseText extracts and cross-validates the fields of one normalized OCR
// text blob. confidence is passed through untouched.
func (uc *ParseCertificateUseCase) ParseText(text string, confidence float64) *domain.ParseResult {
	normalized := extract.Normalize(text)
	fields := uc.extractor.All(normalized)

	weight := validate.Weight(fields.TotalWeight, fields.EmptyWeight, fields.NetWeight)
	dateTime := combineDateTime(
		validate.Date(deref(fields.Date)),
		validate.Time(deref(fields.Time)),
	)
	gps := validate.Coordinates(fields.GPS)
	vehicle := validate.Vehicle(deref(fields.VehicleNumber))

	return &domain.ParseResult{
		ExtractedFields: fields,
		Confidence:      confidence,
		Validation:      buildReport(weight, dateTime, gps, vehicle),
	}
}

// publishEvent is fire-and-forget: a dead broker must never fail a parse.
func (uc *ParseCertificateUseCase) publishEvent(ctx context.Context, source string, result *domain.ParseResult) {
	if uc.publisher == nil {
		return
	}
	event := domain.ParseEvent{
		EventID:       uuid.NewString(),
		Source:        source,
		DocumentType:  deref(result.DocumentType),
		OverallStatus: result.Validation.OverallStatus,
		Confidence:    result.Confidence,
		ParsedAt:      time.Now().UTC(),
	}
	if err := uc.publisher.PublishCertificateParsed(ctx, event); err != nil {
		uc.log.Warn("parse_event_publish_failed", "source", source, "error", err)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package ports

import (
	"context"
	"io"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

// EnvelopeReader pulls the recognized text and the confidence score out of
// an OCR engine's JSON envelope.
type EnvelopeReader interface {
	Read(src io.Reader) (text string, confidence float64, err error)
}

// EventPublisher emits a best-effort audit event per parsed certificate.
type EventPublisher interface {
	PublishCertificateParsed(ctx context.Context, event domain.ParseEvent) error
}

package ports

import (
	"context"
	"io"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

// CertificateParser is the inbound contract for parsing one OCR envelope.
// source is a diagnostic label (upload filename or "inline-json").
type CertificateParser interface {
	ParseEnvelope(ctx context.Context, source string, envelope io.Reader) (*domain.ParseResult, error)
}

package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Joooooonha/Intership-Assignment-RECO/internal/core/domain"
)

// Structural contract for the OCR engine envelope. Nothing is required —
// a missing text field degrades to an empty parse, not an error — but a
// present field must have the right shape.
const schemaJSON = `{
	"type": "object",
	"properties": {
		"text": {"type": "string"},
		"confidence": {"type": "number", "minimum": 0, "maximum": 1},
		"pages": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"text": {"type": "string"}
				}
			}
		}
	}
}`

type ocrEnvelope struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Pages      []struct {
		Text string `json:"text"`
	} `json:"pages"`
}

// Reader decodes OCR engine JSON envelopes. The text lives either at the
// top level or inside the first page; confidence defaults to 0.0.
type Reader struct {
	schema *jsonschema.Schema
}

func NewReader() (*Reader, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("envelope.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add envelope schema: %w", err)
	}
	schema, err := compiler.Compile("envelope.json")
	if err != nil {
		return nil, fmt.Errorf("compile envelope schema: %w", err)
	}
	return &Reader{schema: schema}, nil
}

func (r *Reader) Read(src io.Reader) (string, float64, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return "", 0, domain.WrapError(domain.ErrInvalidInput, "read envelope", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", 0, domain.WrapError(domain.ErrInvalidInput, "read envelope", errors.New("envelope is empty"))
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", 0, domain.WrapError(domain.ErrInvalidInput, "decode envelope", err)
	}
	if err := r.schema.Validate(decoded); err != nil {
		return "", 0, domain.WrapError(domain.ErrInvalidInput, "validate envelope", err)
	}

	var env ocrEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", 0, domain.WrapError(domain.ErrInvalidInput, "decode envelope", err)
	}
	return envelopeText(env), env.Confidence, nil
}

func envelopeText(env ocrEnvelope) string {
	if strings.TrimSpace(env.Text) != "" {
		return env.Text
	}
	if len(env.Pages) > 0 && strings.TrimSpace(env.Pages[0].Text) != "" {
		return env.Pages[0].Text
	}
	return ""
}

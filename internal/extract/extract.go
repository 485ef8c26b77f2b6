// Package extract converts inbound payloads (images, PDFs, plain text)
// into plain text. Extraction failure is signaled by an empty result,
// never by an error crossing the package boundary.
package extract

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Extractor converts raw payload bytes into plain text
type Extractor struct {
	ocr    OCRBackend
	logger *zap.Logger
}

// NewExtractor creates an extractor backed by the given OCR backend
func NewExtractor(ocr OCRBackend, logger *zap.Logger) *Extractor {
	return &Extractor{
		ocr:    ocr,
		logger: logger,
	}
}

// FromPlainText decodes bytes as UTF-8, dropping invalid sequences
func (e *Extractor) FromPlainText(data []byte) string {
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data))
	}

	// Best-effort decode: keep valid runes, skip undecodable bytes
	var sb strings.Builder
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r != utf8.RuneError || size > 1 {
			sb.WriteRune(r)
		}
		data = data[size:]
	}
	return strings.TrimSpace(sb.String())
}

// FromImage extracts text from image bytes via the OCR backend.
// The image is decoded and re-encoded as PNG so the backend always
// receives pixel data in a format it supports.
func (e *Extractor) FromImage(ctx context.Context, data []byte) string {
	text, err := e.ocr.Recognize(ctx, data)
	if err != nil {
		e.logger.Warn("Image OCR failed", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(text)
}

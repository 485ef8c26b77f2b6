package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	ocr "github.com/ranghetto/go_ocr_space"
)

// OCRBackend recognizes text in image bytes. Implementations must be
// safe for concurrent use.
type OCRBackend interface {
	Recognize(ctx context.Context, imageBytes []byte) (string, error)
}

// OCRSpaceBackend recognizes text via the OCR.space HTTP API
type OCRSpaceBackend struct {
	config ocr.Config
}

// NewOCRSpaceBackend creates an OCR.space backend with the given API key
func NewOCRSpaceBackend(apiKey string) *OCRSpaceBackend {
	return &OCRSpaceBackend{
		config: ocr.InitConfig(apiKey, "eng", ocr.OCREngine2),
	}
}

// Recognize decodes the image, re-encodes it as PNG and submits it to
// OCR.space as a base64 data URI. The blocking library call runs in its
// own goroutine so the context deadline is honored.
func (b *OCRSpaceBackend) Recognize(ctx context.Context, imageBytes []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image as PNG: %w", err)
	}

	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	type out struct {
		text string
		err  error
	}
	ch := make(chan out, 1)

	go func() {
		result, err := b.config.ParseFromBase64(encoded)
		if err != nil {
			ch <- out{"", err}
			return
		}
		ch <- out{result.JustText(), nil}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case o := <-ch:
		return o.text, o.err
	}
}

// UnavailableOCR satisfies OCRBackend when no OCR credential is
// configured; every call reports failure.
type UnavailableOCR struct{}

func (UnavailableOCR) Recognize(ctx context.Context, imageBytes []byte) (string, error) {
	return "", fmt.Errorf("no OCR backend configured")
}

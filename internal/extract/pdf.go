package extract

import (
	"context"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// FromPDF extracts the text layer of a PDF. Pages are concatenated in
// document order separated by a blank line; pages contributing no text
// are skipped. The parse runs in its own goroutine so the context
// deadline bounds a pathological document.
func (e *Extractor) FromPDF(ctx context.Context, data []byte) string {
	if ctx.Err() != nil {
		return ""
	}

	ch := make(chan string, 1)

	go func() {
		ch <- e.pdfText(data)
	}()

	select {
	case <-ctx.Done():
		e.logger.Warn("PDF extraction timed out", zap.Error(ctx.Err()))
		return ""
	case text := <-ch:
		return text
	}
}

func (e *Extractor) pdfText(data []byte) string {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		e.logger.Warn("Failed to open PDF", zap.Error(err))
		return ""
	}
	defer doc.Close()

	var parts []string
	for page := 0; page < doc.NumPage(); page++ {
		text, err := doc.Text(page)
		if err != nil {
			e.logger.Warn("Failed to extract PDF page text",
				zap.Int("page", page+1),
				zap.Error(err),
			)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, strings.TrimSpace(text))
	}

	return strings.Join(parts, "\n\n")
}

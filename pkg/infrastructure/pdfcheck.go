package infrastructure

import (
	"bytes"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/ledongthuc/pdf"
)

// ValidatePDF checks that b is a parseable PDF with at least one page.
func ValidatePDF(b []byte) (err error) {
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		return fmt.Errorf("%w: output is not a PDF document", domain.ErrConversion)
	}

	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: malformed PDF: %v", domain.ErrConversion, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return fmt.Errorf("%w: parse PDF: %w", domain.ErrConversion, err)
	}
	if reader.NumPage() < 1 {
		return fmt.Errorf("%w: PDF has no pages", domain.ErrConversion)
	}
	return nil
}

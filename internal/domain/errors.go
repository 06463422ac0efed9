package domain

import "errors"

var (
	// ErrValidation marks resume data rejected before it reaches the renderer.
	ErrValidation = errors.New("validation failed")

	// ErrTemplateNotFound indicates the template id does not resolve to a resource.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateProcessing indicates the template failed to parse or execute.
	ErrTemplateProcessing = errors.New("template processing failed")

	// ErrConversion indicates HTML could not be turned into a valid PDF.
	ErrConversion = errors.New("pdf conversion failed")

	// ErrEnrichmentUnavailable wraps every failure talking to the enrichment service.
	ErrEnrichmentUnavailable = errors.New("enrichment service unavailable")
)

const (
	ErrorCodeValidation       = "VALIDATION_ERROR"
	ErrorCodeTemplateNotFound = "TEMPLATE_NOT_FOUND"
	ErrorCodeRenderFailed     = "RENDER_FAILED"
	ErrorCodeEnrichment       = "ENRICHMENT_UNAVAILABLE"
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeInternal         = "INTERNAL_ERROR"
)

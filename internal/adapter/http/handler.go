package http

import (
	"fmt"
	"mime"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// HeaderEnrichmentFallback is set on responses carrying a substitute result
// because the enrichment service could not be used.
const HeaderEnrichmentFallback = "X-Enrichment-Fallback"

var allowedUploadTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

type Handler struct {
	processor *usecase.Processor
	maxUpload int64
}

func NewHandler(p *usecase.Processor, maxUploadBytes int64) *Handler {
	return &Handler{processor: p, maxUpload: maxUploadBytes}
}

type generateReq struct {
	ResumeData model.ResumeData `json:"resumeData"`
	TemplateID string           `json:"templateId"`
}

type scoreReq struct {
	ResumeData     model.ResumeData `json:"resumeData"`
	JobDescription string           `json:"jobDescription"`
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": "resume-builder"})
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(h.processor.ListTemplates())
}

func (h *Handler) PreviewTemplate(c *fiber.Ctx) error {
	doc, err := h.processor.Preview(c.Params("id"))
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.SendString(doc)
}

func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	var req generateReq
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid payload: %w", domain.ErrValidation, err)
	}
	if strings.TrimSpace(req.TemplateID) == "" {
		return fmt.Errorf("%w: templateId is required", domain.ErrValidation)
	}
	if err := req.ResumeData.Validate(); err != nil {
		return err
	}

	pdf, err := h.processor.RenderResume(c.UserContext(), req.ResumeData, req.TemplateID)
	if err != nil {
		return err
	}

	c.Attachment(usecase.GenerateFilename(req.ResumeData.PersonalInfo.FullName))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

func (h *Handler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fmt.Errorf("%w: file is required", domain.ErrValidation)
	}
	if fh.Size == 0 {
		return fmt.Errorf("%w: file is empty", domain.ErrValidation)
	}
	if fh.Size > h.maxUpload {
		return fmt.Errorf("%w: file exceeds %d bytes", domain.ErrValidation, h.maxUpload)
	}
	contentType, _, err := mime.ParseMediaType(fh.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return fmt.Errorf("%w: file has no valid content type", domain.ErrValidation)
	}
	if _, ok := allowedUploadTypes[contentType]; !ok {
		return fmt.Errorf("%w: unsupported file type %q, upload a PDF or Word document", domain.ErrValidation, contentType)
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	return sendOutcome(c, h.processor.Extract(c.UserContext(), f, fh.Filename, contentType))
}

func (h *Handler) Enhance(c *fiber.Ctx) error {
	var data model.ResumeData
	if err := c.BodyParser(&data); err != nil {
		return fmt.Errorf("%w: invalid payload: %w", domain.ErrValidation, err)
	}
	return sendOutcome(c, h.processor.Enhance(c.UserContext(), data))
}

func (h *Handler) Score(c *fiber.Ctx) error {
	var req scoreReq
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid payload: %w", domain.ErrValidation, err)
	}
	return sendOutcome(c, h.processor.Score(c.UserContext(), req.ResumeData, req.JobDescription))
}

func (h *Handler) Feedback(c *fiber.Ctx) error {
	var data model.ResumeData
	if err := c.BodyParser(&data); err != nil {
		return fmt.Errorf("%w: invalid payload: %w", domain.ErrValidation, err)
	}
	fb, err := h.processor.Feedback(c.UserContext(), data)
	if err != nil {
		return err
	}
	return c.JSON(fb)
}

func sendOutcome[T any](c *fiber.Ctx, out usecase.Outcome[T]) error {
	if out.Fallback {
		c.Set(HeaderEnrichmentFallback, "true")
	}
	return c.JSON(out.Value)
}

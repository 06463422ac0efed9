package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

const (
	DefaultConnectTimeout  = 30 * time.Second
	DefaultResponseTimeout = 60 * time.Second

	maxResponseBytes = 10 << 20
)

// Client calls the enrichment service. Every call is a single attempt and
// every failure wraps domain.ErrEnrichmentUnavailable; deciding what to do
// about a failure is left to the caller.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a client whose connections give up after connectTimeout
// and whose responses must start arriving within responseTimeout.
// Non-positive timeouts use the defaults.
func NewClient(baseURL string, connectTimeout, responseTimeout time.Duration) *Client {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	if responseTimeout <= 0 {
		responseTimeout = DefaultResponseTimeout
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   connectTimeout,
		ResponseHeaderTimeout: responseTimeout,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConnsPerHost:   8,
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Transport: transport,
			Timeout:   connectTimeout + responseTimeout,
		},
	}
}

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned status %d: %s", domain.ErrEnrichmentUnavailable, e.Op, e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool { return target == domain.ErrEnrichmentUnavailable }

// Extract uploads a resume document and returns the structured data the
// service extracted from it.
func (c *Client) Extract(ctx context.Context, file io.Reader, filename, contentType string) (model.ResumeData, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return model.ResumeData{}, fmt.Errorf("%w: extract: %w", domain.ErrEnrichmentUnavailable, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return model.ResumeData{}, fmt.Errorf("%w: extract: read upload: %w", domain.ErrEnrichmentUnavailable, err)
	}
	if err := mw.Close(); err != nil {
		return model.ResumeData{}, fmt.Errorf("%w: extract: %w", domain.ErrEnrichmentUnavailable, err)
	}

	var out wireResume
	if err := c.doPost(ctx, "extract", "/extract", mw.FormDataContentType(), &body, &out); err != nil {
		return model.ResumeData{}, err
	}
	return model.ResumeData(out), nil
}

func (c *Client) Enhance(ctx context.Context, data model.ResumeData) (model.EnhancedResume, error) {
	var out wireEnhanced
	if err := c.postJSON(ctx, "enhance", "/enhance", data, &out); err != nil {
		return model.EnhancedResume{}, err
	}
	return out.toModel()
}

func (c *Client) Score(ctx context.Context, data model.ResumeData, jobDescription string) (domain.AtsScore, error) {
	req := scoreRequest{ResumeData: data, JobDescription: jobDescription}
	var out wireScore
	if err := c.postJSON(ctx, "ats-score", "/ats-score", req, &out); err != nil {
		return domain.AtsScore{}, err
	}
	return out.toDomain()
}

func (c *Client) Feedback(ctx context.Context, data model.ResumeData) (domain.Feedback, error) {
	var out wireFeedback
	if err := c.postJSON(ctx, "feedback", "/feedback", data, &out); err != nil {
		return domain.Feedback{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) postJSON(ctx context.Context, op, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: %s: encode request: %w", domain.ErrEnrichmentUnavailable, op, err)
	}
	return c.doPost(ctx, op, path, "application/json", bytes.NewReader(b), out)
}

// doPost performs one POST and decodes a 2xx JSON response into out.
func (c *Client) doPost(ctx context.Context, op, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrEnrichmentUnavailable, op, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrEnrichmentUnavailable, op, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %s: read response: %w", domain.ErrEnrichmentUnavailable, op, err)
	}
	slog.DebugContext(ctx, "enrichment call",
		"component", "ai.client",
		"operation", op,
		"status", resp.StatusCode,
		"bytes", len(respBytes),
		"elapsed", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: truncate(string(respBytes), 256)}
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %w", domain.ErrEnrichmentUnavailable, op, err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string { return quoteEscaper.Replace(s) }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

var errServiceDown = fmt.Errorf("%w: dial tcp 127.0.0.1:8001: connection refused", domain.ErrEnrichmentUnavailable)

// fakeEnricher returns its canned values, or err for every call when set.
type fakeEnricher struct {
	err error

	extracted model.ResumeData
	enhanced  model.EnhancedResume
	score     domain.AtsScore
	feedback  domain.Feedback

	gotUpload   string
	gotFilename string
	gotJobDesc  string
	gotResume   model.ResumeData
}

func (f *fakeEnricher) Extract(_ context.Context, file io.Reader, filename, _ string) (model.ResumeData, error) {
	b, _ := io.ReadAll(file)
	f.gotUpload, f.gotFilename = string(b), filename
	return f.extracted, f.err
}

func (f *fakeEnricher) Enhance(_ context.Context, data model.ResumeData) (model.EnhancedResume, error) {
	f.gotResume = data
	return f.enhanced, f.err
}

func (f *fakeEnricher) Score(_ context.Context, data model.ResumeData, jobDescription string) (domain.AtsScore, error) {
	f.gotResume, f.gotJobDesc = data, jobDescription
	return f.score, f.err
}

func (f *fakeEnricher) Feedback(_ context.Context, data model.ResumeData) (domain.Feedback, error) {
	f.gotResume = data
	return f.feedback, f.err
}

type fakeConverter struct {
	err   error
	calls int
	html  string
}

func (f *fakeConverter) ToPDF(_ context.Context, html string) ([]byte, error) {
	f.calls++
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4\n%fake\n"), nil
}

var errBrowserGone = errors.New("chrome exited")

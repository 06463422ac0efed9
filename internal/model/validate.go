package model

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"resume-builder/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchema))
	})
	return schema, schemaErr
}

// ValidationError lists every schema violation found in a resume.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", domain.ErrValidation, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == domain.ErrValidation }

// Validate checks r against the embedded resume schema. Violations are
// returned as a *ValidationError; other failures come from the schema itself.
func (r ResumeData) Validate() error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("load resume schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(r))
	if err != nil {
		return fmt.Errorf("validate resume: %w", err)
	}
	if res.Valid() {
		return nil
	}
	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return &ValidationError{Problems: problems}
}

package render

import (
	"fmt"
	"html/template"
	"reflect"
	"strings"

	"resume-builder/internal/model"
)

// Context is what a template executes against: the bound resume sections
// plus the helper functions templates may call.
type Context struct {
	Values map[string]any
	Funcs  template.FuncMap
}

// Bind maps resume data onto the names templates use. Optional sections are
// bound only when present, so templates must test them with hasContent.
func Bind(data model.ResumeData) Context {
	pi := data.PersonalInfo
	if pi == nil {
		pi = &model.PersonalInfo{}
	}

	values := map[string]any{
		"personalInfo": pi,
		"summary":      data.Summary,
		"skills":       data.Skills,
		"experience":   data.Experience,
		"education":    data.Education,
	}
	if data.Projects != nil {
		values["projects"] = data.Projects
	}
	if data.Certifications != nil {
		values["certifications"] = data.Certifications
	}
	if data.Languages != nil {
		values["languages"] = data.Languages
	}
	if data.UnexpectedFields != nil {
		values["unexpectedFields"] = data.UnexpectedFields
	}

	return Context{
		Values: values,
		Funcs: template.FuncMap{
			"hasContent": HasContent,
			"formatDate": FormatDate,
		},
	}
}

// HasContent reports whether v is non-nil and, for collections, non-empty.
// Strings count only when they hold something besides whitespace.
func HasContent(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(x) != ""
	case *string:
		return x != nil && strings.TrimSpace(*x) != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return HasContent(rv.Elem().Interface())
	}
	return true
}

// FormatDate renders an end date; a missing or blank date means the entry is
// ongoing.
func FormatDate(v any) string {
	switch x := v.(type) {
	case nil:
		return "Present"
	case string:
		if strings.TrimSpace(x) == "" {
			return "Present"
		}
		return x
	case *string:
		if x == nil || strings.TrimSpace(*x) == "" {
			return "Present"
		}
		return *x
	}
	return fmt.Sprint(v)
}

// File: message.go
// Title: Message Templates
// Description: Renders user-facing message templates with text/template and
//              caches the parsed templates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Template interpolation inside the translation manager
// - 2026-10-17 v0.2.0: Standalone renderer with a concurrent cache

package i18n

import (
	"strings"
	"sync"
	"text/template"

	ztkerror "github.com/msto63/ztk/foundation/core/error"
)

var templates sync.Map // source -> *template.Template

// RenderMessage executes tmpl against data. Strings without template actions
// are returned unchanged.
func RenderMessage(tmpl string, data interface{}) (string, error) {
	if !strings.Contains(tmpl, "{{") {
		return tmpl, nil
	}

	t, err := compile(tmpl)
	if err != nil {
		return tmpl, ztkerror.Wrap(err, "template compilation failed").
			WithCode(ztkerror.CodeInvalidFormat).
			WithOperation("i18n.RenderMessage")
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return tmpl, ztkerror.Wrap(err, "template execution failed").
			WithCode(ztkerror.CodeInvalidFormat).
			WithOperation("i18n.RenderMessage")
	}
	return sb.String(), nil
}

func compile(source string) (*template.Template, error) {
	if t, ok := templates.Load(source); ok {
		return t.(*template.Template), nil
	}
	t, err := template.New("message").Option("missingkey=zero").Parse(source)
	if err != nil {
		return nil, err
	}
	templates.Store(source, t)
	return t, nil
}

// CheckMessage reports whether tmpl parses as a message template
func CheckMessage(tmpl string) error {
	if !strings.Contains(tmpl, "{{") {
		return nil
	}
	_, err := compile(tmpl)
	return err
}

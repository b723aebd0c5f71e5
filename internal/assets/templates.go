// Package assets holds the embedded templates used to render the dictionary.
package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const dictionaryTemplateName = "dictionary.md.go.tmpl"

//go:embed templates/dictionary.md.go.tmpl
var fallbackDictionaryTemplate string

// ParseDictionaryTemplate parses the Markdown template at templatePath.
// The embedded template is used when templatePath is empty, missing or invalid.
func ParseDictionaryTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, dictionaryTemplateName, fallbackDictionaryTemplate)
}

func parseTemplateWithFallback(templatePath, fallbackName, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"title": func(s string) string {
			return cases.Title(language.English).String(s)
		},
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

package export

import (
	"bytes"
	"fmt"

	"github.com/at-ishikawa/wordwise/internal/assets"
)

// Markdown renders records with the template at templatePath,
// or with the embedded dictionary template when templatePath is empty.
func Markdown(records []Record, templatePath string) ([]byte, error) {
	tmpl, err := assets.ParseDictionaryTemplate(templatePath)
	if err != nil {
		return nil, fmt.Errorf("assets.ParseDictionaryTemplate > %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, records); err != nil {
		return nil, fmt.Errorf("tmpl.Execute > %w", err)
	}
	return buf.Bytes(), nil
}

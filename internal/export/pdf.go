package export

import (
	"fmt"
	"path/filepath"

	"github.com/mandolyte/mdtopdf"
)

// WritePDF renders the Markdown of records into a PDF file at path.
func WritePDF(path string, records []Record, templatePath string) error {
	if filepath.Ext(path) != ".pdf" {
		return fmt.Errorf("output file must have .pdf extension: %s", path)
	}

	content, err := Markdown(records, templatePath)
	if err != nil {
		return err
	}
	renderer := mdtopdf.NewPdfRenderer("P", "A4", path, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}

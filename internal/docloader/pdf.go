package docloader

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// loadPDFPages extracts one text page per PDF page. Pages that fail text
// extraction are skipped rather than failing the whole document.
func loadPDFPages(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Page is the extracted plain text of one document page.
type Page struct {
	Number int
	Text   string
}

// Extractor turns an uploaded document into per-page plain text.
type Extractor interface {
	Extract(path string) ([]Page, error)
}

// FileExtractor dispatches on file extension: PDF pages via the pdf reader,
// plain text files as a single page.
type FileExtractor struct{}

var _ Extractor = FileExtractor{}

func NewFileExtractor() FileExtractor { return FileExtractor{} }

func (FileExtractor) Extract(path string) ([]Page, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".txt":
		return extractPlainText(path)
	default:
		return nil, fmt.Errorf("unsupported document type: %s", filepath.Base(path))
	}
}

func extractPDF(path string) ([]Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	totalPage := reader.NumPage()
	pages := make([]Page, 0, totalPage)
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d of %s: %w", pageIndex, filepath.Base(path), err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, Page{Number: pageIndex, Text: text})
	}
	return pages, nil
}

func extractPlainText(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	return []Page{{Number: 1, Text: string(data)}}, nil
}

package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Extractor reads PDF files and produces RawDocuments. It is the only
// component that touches the PDF libraries; everything downstream works on
// plain strings.
type Extractor struct {
	maxFileSize int64
	maxTextSize int
	validation  *model.Configuration
}

// NewExtractor creates an extractor with the specified file size cap.
func NewExtractor(maxFileSize int64) *Extractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Extractor{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
		validation:  conf,
	}
}

// Extract reads the PDF at path and returns its raw content. Failures to
// read the file at all are ErrUnreadableFile; a readable PDF with no text
// is ErrNoExtractableContent. Both are per-file errors the caller is
// expected to report and skip.
func (e *Extractor) Extract(path string) (*RawDocument, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrUnreadableFile)
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: file does not exist: %s", ErrUnreadableFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot access %s: %v", ErrUnreadableFile, path, err)
	}

	if err := e.validateFile(path, fileInfo); err != nil {
		return nil, err
	}

	// Structural validation first: pdfcpu distinguishes corrupt or encrypted
	// files from valid ones that merely carry no text.
	if err := api.ValidateFile(path, e.validation); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrUnreadableFile, path, err)
	}
	defer f.Close()

	doc := &RawDocument{
		SourceFile: filepath.Base(path),
		Pages:      pdfReader.NumPage(),
	}
	e.extractContent(pdfReader, doc)

	if doc.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", ErrNoExtractableContent, path)
	}
	return doc, nil
}

// validateFile performs basic checks before any parsing is attempted.
func (e *Extractor) validateFile(path string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("%w: path is a directory, not a file: %s", ErrUnreadableFile, path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("%w: file is not a PDF: %s", ErrUnreadableFile, path)
	}
	if fileInfo.Size() > e.maxFileSize {
		return fmt.Errorf("%w: file too large: %d bytes (max: %d bytes)",
			ErrUnreadableFile, fileInfo.Size(), e.maxFileSize)
	}
	return nil
}

// extractContent fills doc with text lines and row grids. A page that fails
// to extract is skipped; partial content is better than none.
func (e *Extractor) extractContent(pdfReader *pdf.Reader, doc *RawDocument) {
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		if content, err := page.GetPlainText(nil); err == nil {
			for _, line := range strings.Split(content, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if totalLength+len(line) > e.maxTextSize {
					return
				}
				doc.Lines = append(doc.Lines, line)
				totalLength += len(line)
			}
		}

		if grid := extractRowGrid(page); len(grid) > 0 {
			doc.Grids = append(doc.Grids, grid)
		}
	}
}

// extractRowGrid converts a page's positioned text rows into a cell grid.
// Each text fragment on a row becomes one cell, left to right.
func extractRowGrid(page pdf.Page) (grid [][]string) {
	defer func() {
		// ledongthuc's row extraction panics on some malformed content
		// streams; treat that as a page with no grid.
		if recover() != nil {
			grid = nil
		}
	}()

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil
	}

	for _, row := range rows {
		var cells []string
		for _, text := range row.Content {
			cell := strings.TrimSpace(text.S)
			if cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) > 0 {
			grid = append(grid, cells)
		}
	}
	return grid
}

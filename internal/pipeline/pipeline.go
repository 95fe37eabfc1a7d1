// Package pipeline runs the extract -> normalize -> validate/map transform
// over a batch of input files, accumulating rows and failures, and writes
// the workbook once at the end.
package pipeline

import (
	"errors"
	"log"

	"github.com/aapp-oss/pledges/internal/lookup"
	"github.com/aapp-oss/pledges/internal/normalize"
	"github.com/aapp-oss/pledges/internal/pdf"
	"github.com/aapp-oss/pledges/internal/template"
)

// DocumentExtractor is the Extractor's contract as the pipeline sees it.
type DocumentExtractor interface {
	Extract(path string) (*pdf.RawDocument, error)
}

// RowWriter is the spreadsheet writer's contract as the pipeline sees it.
type RowWriter interface {
	Write(path string, columns []string, rows []template.OutputRow) error
}

// FileResult summarizes one input file's outcome.
type FileResult struct {
	File string
	// Strategy is the matcher that produced the file's candidates.
	Strategy string
	// Written is the number of rows this file contributed to the output.
	Written int
	// Err is the file-level failure (unreadable, no content), if any.
	Err error
	// Failures are the per-record validation rejections.
	Failures []*template.ValidationError
}

// Report is the outcome of a whole run.
type Report struct {
	Files     []FileResult
	TotalRows int
	// OutputPath is set when the workbook was written.
	OutputPath string
}

// Success reports whether the run produced any output at all. Partial
// failure is still success; only an empty row set is not.
func (r *Report) Success() bool {
	return r.TotalRows > 0
}

// Pipeline wires the components of one batch run. It is single-threaded:
// one file at a time, one record at a time, with the row accumulator as the
// only mutable state.
type Pipeline struct {
	extractor  DocumentExtractor
	normalizer *normalize.Normalizer
	lookup     *lookup.Table
	writer     RowWriter
	logger     *log.Logger
}

// New creates a pipeline. lookupTable may be nil (no donor-ID backfill);
// logger may be nil (the default logger is used).
func New(extractor DocumentExtractor, normalizer *normalize.Normalizer, lookupTable *lookup.Table, writer RowWriter, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		extractor:  extractor,
		normalizer: normalizer,
		lookup:     lookupTable,
		writer:     writer,
		logger:     logger,
	}
}

// Run processes paths in order and writes the workbook to outputPath when
// at least one row was produced. File-level and record-level failures are
// recorded in the report and do not halt the batch; only a workbook write
// failure is returned as an error.
func (p *Pipeline) Run(paths []string, outputPath string) (*Report, error) {
	report := &Report{}
	var rows []template.OutputRow

	for _, path := range paths {
		result := p.processFile(path, &rows)
		report.TotalRows += result.Written
		report.Files = append(report.Files, result)
	}

	if report.TotalRows == 0 {
		p.logger.Printf("no rows extracted from any input file")
		return report, nil
	}

	if err := p.writer.Write(outputPath, template.Columns(), rows); err != nil {
		return report, err
	}
	report.OutputPath = outputPath
	return report, nil
}

// processFile runs one file through extract/normalize/validate/map,
// appending accepted rows to the accumulator.
func (p *Pipeline) processFile(path string, rows *[]template.OutputRow) FileResult {
	result := FileResult{File: path}

	doc, err := p.extractor.Extract(path)
	if err != nil {
		result.Err = err
		switch {
		case errors.Is(err, pdf.ErrNoExtractableContent):
			p.logger.Printf("[WARN] %s: no extractable content", path)
		default:
			p.logger.Printf("[WARN] %s: %v", path, err)
		}
		return result
	}

	candidates, strategy := p.normalizer.Records(doc)
	result.Strategy = strategy
	if len(candidates) == 0 {
		p.logger.Printf("[WARN] %s: no gift records matched (%d lines, %d grids)",
			path, len(doc.Lines), len(doc.Grids))
		return result
	}

	for _, c := range candidates {
		p.backfillDonorID(&c)

		if fieldErrs := template.Validate(c); len(fieldErrs) > 0 {
			verr := &template.ValidationError{
				SourceFile: doc.SourceFile,
				Index:      c.Index,
				Fields:     fieldErrs,
			}
			result.Failures = append(result.Failures, verr)
			p.logger.Printf("[WARN] rejected %v", verr)
			continue
		}

		*rows = append(*rows, template.Map(c.Record))
		result.Written++
	}

	p.logger.Printf("[OK] %s: %d rows written, %d rejected (strategy %s)",
		path, result.Written, len(result.Failures), strategy)
	return result
}

// backfillDonorID fills an empty donor ID from the lookup table, keyed by
// donor name. Existing IDs are never overwritten.
func (p *Pipeline) backfillDonorID(c *normalize.Candidate) {
	if p.lookup == nil || c.Record.DonorID != "" || c.Record.DonorName == "" {
		return
	}
	if id, ok := p.lookup.DonorID(c.Record.DonorName); ok {
		c.Record.DonorID = id
	}
}

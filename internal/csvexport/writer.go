// Package csvexport renders consultation history as CSV and XLSX files.
package csvexport

import (
	"encoding/csv"
	"io"
	"time"

	"credigate/internal/domain"
)

// BOM is the UTF-8 byte order mark, prepended for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the export header row.
var columns = []string{
	"Date",
	"Consultation",
	"Document Type",
	"Document",
	"Status",
	"Protocol",
	"Error Code",
}

// Writer wraps csv.Writer for exporting consultations as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteConsultations converts a batch of history rows to CSV and writes them.
func (w *Writer) WriteConsultations(consultations []domain.Consultation) error {
	for i := range consultations {
		if err := w.csv.Write(consultationToRow(&consultations[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func consultationToRow(c *domain.Consultation) []string {
	return []string{
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.Slug,
		c.DocumentType,
		c.DocumentMasked,
		string(c.Status),
		c.Protocol,
		c.ErrorCode,
	}
}

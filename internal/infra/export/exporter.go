// Package export writes lead snapshots to CSV and XLSX files on disk.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var columns = []string{
	"ID", "Company", "Website", "Email", "Email Verified", "Email Type",
	"Phone", "Contact Name", "Country", "City", "Industry", "Source",
	"Status", "Created At",
}

// Exporter writes export files into a fixed directory. File names carry a
// timestamp so repeated exports never clobber each other.
type Exporter struct {
	dir string
	now func() time.Time
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir, now: time.Now}
}

// Export writes the leads in the requested format and returns the absolute
// path of the created file.
func (e *Exporter) Export(leads []*entity.Lead, format string) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("leads_%s.%s", e.now().UTC().Format("20060102_150405"), format)
	path := filepath.Join(e.dir, name)

	switch format {
	case FormatCSV:
		if err := e.writeCSV(path, leads); err != nil {
			return "", err
		}
	case FormatXLSX:
		if err := e.writeXLSX(path, leads); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}

	return path, nil
}

func (e *Exporter) writeCSV(path string, leads []*entity.Lead) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return err
	}
	for _, lead := range leads {
		if err := writer.Write(row(lead)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (e *Exporter) writeXLSX(path string, leads []*entity.Lead) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	const sheet = "Leads"
	index, err := workbook.NewSheet(sheet)
	if err != nil {
		return err
	}
	workbook.SetActiveSheet(index)
	workbook.DeleteSheet("Sheet1")

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := workbook.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, lead := range leads {
		values := row(lead)
		cells := make([]any, len(values))
		for j, value := range values {
			cells[j] = value
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := workbook.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	return workbook.SaveAs(path)
}

func row(lead *entity.Lead) []string {
	return []string{
		strconv.FormatInt(lead.ID, 10),
		lead.CompanyName,
		deref(lead.Website),
		deref(lead.Email),
		strconv.FormatBool(lead.EmailVerified),
		deref(lead.EmailType),
		deref(lead.Phone),
		deref(lead.ContactName),
		deref(lead.Country),
		deref(lead.City),
		deref(lead.Industry),
		lead.Source,
		lead.Status,
		lead.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

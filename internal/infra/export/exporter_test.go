package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

func sampleLeads() []*entity.Lead {
	lead, _ := entity.NewLead("Acme Textiles", entity.SourceEuropages)
	lead.ID = 1
	lead.Website = entity.StringPtr("acme.example")
	lead.Email = entity.StringPtr("export@acme.example")
	lead.EmailVerified = true
	lead.EmailType = entity.StringPtr(entity.EmailTypeFound)
	lead.Country = entity.StringPtr("Germany")

	other, _ := entity.NewLead("Beta Fashion", entity.SourceKompass)
	other.ID = 2

	return []*entity.Lead{lead, other}
}

func TestExportCSV(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir)

	path, err := exporter.Export(sampleLeads(), FormatCSV)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "leads_"))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, columns, records[0])
	assert.Equal(t, "Acme Textiles", records[1][1])
	assert.Equal(t, "export@acme.example", records[1][3])
	assert.Equal(t, "true", records[1][4])
	assert.Equal(t, "Germany", records[1][8])
	assert.Equal(t, "Beta Fashion", records[2][1])
	assert.Equal(t, "", records[2][3])
}

func TestExportXLSX(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir)

	path, err := exporter.Export(sampleLeads(), FormatXLSX)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".xlsx"))

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportUnsupportedFormat(t *testing.T) {
	exporter := NewExporter(t.TempDir())

	_, err := exporter.Export(nil, "pdf")

	assert.Error(t, err)
}

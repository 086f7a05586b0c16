package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aksoytekstil/leadfinder/internal/entity"
	"github.com/aksoytekstil/leadfinder/internal/infra/database"
)

func TestExportAppliesWithEmailFilter(t *testing.T) {
	repo := new(MockLeadRepository)
	exporter := new(MockExporter)

	repo.On("List", mock.Anything, database.ListFilter{Status: entity.LeadStatusNew, WithEmail: true}).
		Return([]*entity.Lead{leadWithEmail(10, "Acme", "info@acme.example")}, nil)
	exporter.On("Export", mock.Anything, "csv").Return("/exports/leads_20260829_120000.csv", nil)

	uc := NewExportLeadsUseCase(repo, exporter)

	output, err := uc.Execute(context.Background(), ExportLeadsInput{
		Status:    entity.LeadStatusNew,
		WithEmail: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "/exports/leads_20260829_120000.csv", output.FilePath)
	assert.Equal(t, 1, output.Count)
	repo.AssertExpectations(t)
}

func TestExportRefusesUnknownFormat(t *testing.T) {
	uc := NewExportLeadsUseCase(new(MockLeadRepository), new(MockExporter))

	_, err := uc.Execute(context.Background(), ExportLeadsInput{Format: "pdf"})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}

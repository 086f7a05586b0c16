package usecase

import (
	"context"

	"github.com/aksoytekstil/leadfinder/internal/infra/database"
	"github.com/aksoytekstil/leadfinder/internal/infra/export"
)

// ExportLeadsUseCase snapshots the current lead set to a CSV or XLSX file.
type ExportLeadsUseCase struct {
	Repo     LeadRepositoryInterface
	Exporter ExporterInterface
}

func NewExportLeadsUseCase(repo LeadRepositoryInterface, exporter ExporterInterface) *ExportLeadsUseCase {
	return &ExportLeadsUseCase{Repo: repo, Exporter: exporter}
}

func (uc *ExportLeadsUseCase) Execute(ctx context.Context, input ExportLeadsInput) (*ExportLeadsOutput, error) {
	format := input.Format
	if format == "" {
		format = export.FormatCSV
	}
	if format != export.FormatCSV && format != export.FormatXLSX {
		return nil, &DomainError{Code: "UNSUPPORTED_FORMAT", Message: "unsupported format: " + format}
	}

	leads, err := uc.Repo.List(ctx, database.ListFilter{
		Status:    input.Status,
		Country:   input.Country,
		WithEmail: input.WithEmail,
	})
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	path, err := uc.Exporter.Export(leads, format)
	if err != nil {
		return nil, &TechnicalError{Code: "EXPORT_ERROR", Message: err.Error()}
	}

	return &ExportLeadsOutput{FilePath: path, Count: len(leads)}, nil
}

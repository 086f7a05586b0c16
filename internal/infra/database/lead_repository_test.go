package database

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/aksoytekstil/leadfinder/internal/entity"
)

func TestLeadInsertFillsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	lead, _ := entity.NewLead("Acme Textiles", entity.SourceEuropages)
	lead.Website = entity.StringPtr("acme.example")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO leads")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	repo := NewLeadRepository(db)
	err = repo.Insert(context.Background(), lead)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByCompanyAndWebsite(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	website := "acme.example"
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM leads WHERE company_name = $1 AND website = $2")).
		WithArgs("Acme Textiles", website).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := NewLeadRepository(db)
	exists, err := repo.ExistsByCompanyAndWebsite(context.Background(), "Acme Textiles", &website)

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsWithNilWebsiteUsesIsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("website IS NULL")).
		WithArgs("Acme Textiles").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := NewLeadRepository(db)
	exists, err := repo.ExistsByCompanyAndWebsite(context.Background(), "Acme Textiles", nil)

	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM leads WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewLeadRepository(db)
	lead, err := repo.FindByID(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, lead)
}

func TestMarkContacted(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leads SET status = $1, last_contacted = $2")).
		WithArgs(entity.LeadStatusContacted, at, sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewLeadRepository(db)
	err = repo.MarkContacted(context.Background(), 7, at)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

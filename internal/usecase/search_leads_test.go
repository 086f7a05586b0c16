package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aksoytekstil/leadfinder/internal/entity"
	"github.com/aksoytekstil/leadfinder/internal/infra/queue"
)

func newTestLead(company, website string) *entity.Lead {
	lead, _ := entity.NewLead(company, entity.SourceEuropages)
	lead.Website = entity.StringPtr(website)
	return lead
}

func TestSearchSavesNewLeads(t *testing.T) {
	repo := new(MockLeadRepository)
	history := new(MockSearchHistoryRepository)

	source := &fakeSource{name: entity.SourceEuropages, leads: []*entity.Lead{
		newTestLead("Acme Textiles", "acme.example"),
		newTestLead("Beta Fashion", "beta.example"),
	}}

	repo.On("ExistsByCompanyAndWebsite", mock.Anything, "Acme Textiles", mock.Anything).Return(false, nil)
	repo.On("ExistsByCompanyAndWebsite", mock.Anything, "Beta Fashion", mock.Anything).Return(false, nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	history.On("Insert", mock.Anything, mock.Anything).Return(nil)

	uc := NewSearchLeadsUseCase(repo, history, []Source{source}, nil, nil)

	output, err := uc.Execute(context.Background(), SearchLeadsInput{Query: "textile importer"})

	assert.NoError(t, err)
	assert.Equal(t, 2, output.TotalFound)
	assert.Equal(t, 2, output.Saved)
	assert.Equal(t, 0, output.Duplicates)
	assert.Equal(t, 2, output.PerSource[entity.SourceEuropages])

	repo.AssertNumberOfCalls(t, "Insert", 2)
	history.AssertNumberOfCalls(t, "Insert", 1)
}

func TestSearchSkipsDuplicates(t *testing.T) {
	repo := new(MockLeadRepository)
	history := new(MockSearchHistoryRepository)

	source := &fakeSource{name: entity.SourceEuropages, leads: []*entity.Lead{
		newTestLead("Acme Textiles", "acme.example"),
		newTestLead("Acme Textiles", "acme.example"),
	}}

	// The repo sees the first insert before the second existence check, so the
	// second record reports as already known.
	repo.On("ExistsByCompanyAndWebsite", mock.Anything, "Acme Textiles", mock.Anything).Return(false, nil).Once()
	repo.On("ExistsByCompanyAndWebsite", mock.Anything, "Acme Textiles", mock.Anything).Return(true, nil).Once()
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	history.On("Insert", mock.Anything, mock.Anything).Return(nil)

	uc := NewSearchLeadsUseCase(repo, history, []Source{source}, nil, nil)

	output, err := uc.Execute(context.Background(), SearchLeadsInput{Query: "textile importer"})

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Saved)
	assert.Equal(t, 1, output.Duplicates)
	repo.AssertNumberOfCalls(t, "Insert", 1)
}

func TestSearchEmptyQuery(t *testing.T) {
	uc := NewSearchLeadsUseCase(new(MockLeadRepository), nil, nil, nil, nil)

	_, err := uc.Execute(context.Background(), SearchLeadsInput{})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}

func TestSearchUnknownSource(t *testing.T) {
	uc := NewSearchLeadsUseCase(new(MockLeadRepository), nil, nil, nil, nil)

	_, err := uc.Execute(context.Background(), SearchLeadsInput{
		Query:   "textile importer",
		Sources: []string{"nonexistent"},
	})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}

func TestSearchPublishesLeadFound(t *testing.T) {
	repo := new(MockLeadRepository)
	history := new(MockSearchHistoryRepository)
	producer := new(MockQueueProducer)

	source := &fakeSource{name: entity.SourceEuropages, leads: []*entity.Lead{
		newTestLead("Acme Textiles", "acme.example"),
	}}

	repo.On("ExistsByCompanyAndWebsite", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	history.On("Insert", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishLeadFound", mock.Anything, mock.MatchedBy(func(p queue.LeadFoundPayload) bool {
		return p.CompanyName == "Acme Textiles"
	})).Return(nil)

	uc := NewSearchLeadsUseCase(repo, history, []Source{source}, nil, producer)

	_, err := uc.Execute(context.Background(), SearchLeadsInput{Query: "textile importer"})

	assert.NoError(t, err)
	producer.AssertExpectations(t)
}

func TestIntakeLeadDeduplicates(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("ExistsByCompanyAndWebsite", mock.Anything, "Acme Textiles", mock.Anything).Return(true, nil)

	uc := NewSearchLeadsUseCase(repo, nil, nil, nil, nil)

	err := uc.IntakeLead(context.Background(), queue.LeadFoundPayload{
		CompanyName: "Acme Textiles",
		Website:     entity.StringPtr("acme.example"),
	})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseVariables() map[string]any {
	return map[string]any{
		"our_company":      "Aksoy Tekstil",
		"monthly_capacity": "200,000 pieces",
		"specialization":   []string{"T-shirts", "Hoodies"},
		"certifications":   []string{"ISO 9001", "OEKO-TEX"},
		"sender_name":      "Export Department",
		"sender_title":     "Export Manager",
		"contact_info":     "www.aksoytekstil.com | export@aksoytekstil.com | +90",
	}
}

func TestRenderInitialContact(t *testing.T) {
	manager := NewManager(baseVariables())

	rendered, err := manager.Render("initial_contact_en", map[string]any{
		"contact_name":  "John Smith",
		"their_company": "Fashion GmbH",
		"company_name":  "Fashion GmbH",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Textile Manufacturing Partnership - Fashion GmbH", rendered.Subject)
	assert.Contains(t, rendered.Body, "Dear John Smith")
	assert.Contains(t, rendered.Body, "• T-shirts\n• Hoodies")
	assert.Contains(t, rendered.Body, "ISO 9001, OEKO-TEX")
	assert.Contains(t, rendered.Body, "Fashion GmbH")
}

func TestRenderIsDeterministic(t *testing.T) {
	manager := NewManager(baseVariables())
	vars := map[string]any{
		"contact_name":  "Sir/Madam",
		"their_company": "Acme",
		"company_name":  "Acme",
	}

	first, err := manager.Render("initial_contact_en", vars)
	assert.NoError(t, err)
	second, err := manager.Render("initial_contact_en", vars)
	assert.NoError(t, err)

	assert.Equal(t, first.Subject, second.Subject)
	assert.Equal(t, first.Body, second.Body)
}

func TestRenderMissingVariables(t *testing.T) {
	manager := NewManager(nil)

	_, err := manager.Render("initial_contact_en", map[string]any{
		"contact_name": "John",
	})

	assert.Error(t, err)
	missing, ok := err.(*MissingVariablesError)
	assert.True(t, ok)
	assert.Contains(t, missing.Keys, "their_company")
	assert.Contains(t, missing.Keys, "our_company")
	assert.NotContains(t, missing.Keys, "contact_name")
}

func TestRenderUnknownTemplate(t *testing.T) {
	manager := NewManager(baseVariables())

	_, err := manager.Render("does_not_exist", nil)

	assert.Error(t, err)
	notFound, ok := err.(*TemplateNotFoundError)
	assert.True(t, ok)
	assert.Equal(t, "does_not_exist", notFound.Name)
}

func TestCallVariablesOverrideBase(t *testing.T) {
	manager := NewManager(baseVariables())

	rendered, err := manager.Render("initial_contact_en", map[string]any{
		"contact_name":  "Jane",
		"their_company": "Acme",
		"company_name":  "Acme",
		"our_company":   "Override Ltd",
	})

	assert.NoError(t, err)
	assert.Contains(t, rendered.Body, "Override Ltd")
	assert.False(t, strings.Contains(rendered.Body, "Aksoy Tekstil"))
}

func TestForLanguageFallback(t *testing.T) {
	manager := NewManager(nil)

	assert.Equal(t, "initial_contact_de", manager.ForLanguage("initial_contact", "de"))
	assert.Equal(t, "initial_contact_en", manager.ForLanguage("initial_contact", "pt"))
}

func TestListIsSorted(t *testing.T) {
	manager := NewManager(nil)

	names := manager.List()
	assert.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.True(t, names[i-1] < names[i])
	}
}

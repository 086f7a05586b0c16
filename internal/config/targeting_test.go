package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTargeting(t *testing.T) {
	targeting, err := LoadTargeting("")
	assert.NoError(t, err)

	assert.Contains(t, targeting.Markets, "europe")
	assert.Contains(t, targeting.Markets["europe"], "Germany")
	assert.NotEmpty(t, targeting.Keywords["en"])
	assert.Equal(t, "Aksoy Tekstil", targeting.Company.Name)
}

func TestLoadTargetingFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targeting.yaml")
	content := `
company:
  name: Custom Co
  monthly_capacity: 10 pieces
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	targeting, err := LoadTargeting(path)
	assert.NoError(t, err)
	assert.Equal(t, "Custom Co", targeting.Company.Name)
	assert.Equal(t, "10 pieces", targeting.Company.MonthlyCapacity)
	// Untouched sections keep their defaults.
	assert.Contains(t, targeting.Markets, "europe")
}

func TestLoadTargetingMissingFile(t *testing.T) {
	_, err := LoadTargeting("/nonexistent/targeting.yaml")
	assert.Error(t, err)
}

func TestTemplateVariables(t *testing.T) {
	profile := CompanyProfile{
		Name:            "Aksoy Tekstil",
		Website:         "www.aksoytekstil.com",
		ContactEmail:    "export@aksoytekstil.com",
		Phone:           "+90 212 000 00 00",
		MonthlyCapacity: "200,000 pieces",
		Specialization:  []string{"T-shirts"},
		Certifications:  []string{"ISO 9001"},
		SenderName:      "Export Department",
		SenderTitle:     "Export Manager",
	}

	vars := profile.TemplateVariables()

	assert.Equal(t, "Aksoy Tekstil", vars["our_company"])
	assert.Equal(t, []string{"T-shirts"}, vars["specialization"])
	assert.Equal(t, "www.aksoytekstil.com | export@aksoytekstil.com | +90 212 000 00 00", vars["contact_info"])
}

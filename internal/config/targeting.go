package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CompanyProfile describes the sending company. Its fields feed the outreach
// templates.
type CompanyProfile struct {
	Name            string   `yaml:"name"`
	Website         string   `yaml:"website"`
	ContactEmail    string   `yaml:"contact_email"`
	Phone           string   `yaml:"phone"`
	MonthlyCapacity string   `yaml:"monthly_capacity"`
	Specialization  []string `yaml:"specialization"`
	Certifications  []string `yaml:"certifications"`
	SenderName      string   `yaml:"sender_name"`
	SenderTitle     string   `yaml:"sender_title"`
}

// Targeting bundles the search keywords per language, the target markets
// (country -> cities) and the company profile.
type Targeting struct {
	Keywords map[string][]string            `yaml:"keywords"`
	Markets  map[string]map[string][]string `yaml:"markets"`
	Company  CompanyProfile                 `yaml:"company"`
}

// LoadTargeting reads the targeting YAML at path. An empty path returns the
// built-in defaults.
func LoadTargeting(path string) (*Targeting, error) {
	targeting := defaultTargeting()

	if path == "" {
		return targeting, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targeting file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, targeting); err != nil {
		return nil, fmt.Errorf("parse targeting file %s: %w", path, err)
	}

	return targeting, nil
}

// TemplateVariables flattens the company profile into the base variable set
// merged under every template render.
func (p CompanyProfile) TemplateVariables() map[string]any {
	return map[string]any{
		"our_company":      p.Name,
		"monthly_capacity": p.MonthlyCapacity,
		"specialization":   p.Specialization,
		"certifications":   p.Certifications,
		"sender_name":      p.SenderName,
		"sender_title":     p.SenderTitle,
		"contact_info":     fmt.Sprintf("%s | %s | %s", p.Website, p.ContactEmail, p.Phone),
	}
}

func defaultTargeting() *Targeting {
	return &Targeting{
		Keywords: map[string][]string{
			"en": {
				"textile importer",
				"clothing wholesaler",
				"garment buyer",
				"fashion brand manufacturer",
				"apparel sourcing",
				"textile procurement",
				"fabric importer",
				"private label clothing",
				"OEM garment manufacturer",
				"textile trading company",
			},
			"de": {
				"textil importeur",
				"bekleidung großhandel",
				"mode einkäufer",
				"textil beschaffung",
			},
			"fr": {
				"importateur textile",
				"grossiste vêtements",
				"acheteur mode",
			},
			"ar": {
				"مستورد ملابس",
				"تجارة المنسوجات",
			},
		},
		Markets: map[string]map[string][]string{
			"europe": {
				"Germany":     {"Berlin", "Hamburg", "Munich", "Frankfurt", "Düsseldorf"},
				"UK":          {"London", "Manchester", "Birmingham", "Leeds"},
				"France":      {"Paris", "Lyon", "Marseille"},
				"Italy":       {"Milan", "Rome", "Florence"},
				"Spain":       {"Madrid", "Barcelona", "Valencia"},
				"Netherlands": {"Amsterdam", "Rotterdam"},
				"Poland":      {"Warsaw", "Krakow"},
			},
			"middle_east": {
				"UAE":          {"Dubai", "Abu Dhabi"},
				"Saudi Arabia": {"Riyadh", "Jeddah"},
				"Qatar":        {"Doha"},
				"Kuwait":       {"Kuwait City"},
			},
			"usa": {
				"USA": {"New York", "Los Angeles", "Chicago", "Miami", "Dallas"},
			},
			"turkey": {
				"Turkey": {"Istanbul", "Ankara", "Izmir", "Bursa", "Gaziantep"},
			},
		},
		Company: CompanyProfile{
			Name:            "Aksoy Tekstil",
			Website:         "www.aksoytekstil.com",
			ContactEmail:    "export@aksoytekstil.com",
			Phone:           "+90 xxx xxx xx xx",
			MonthlyCapacity: "200,000 pieces",
			Specialization:  []string{"T-shirts", "Polo shirts", "Hoodies", "Sportswear", "Casual wear"},
			Certifications:  []string{"ISO 9001", "OEKO-TEX", "GOTS"},
			SenderName:      "Export Department",
			SenderTitle:     "Export Manager",
		},
	}
}

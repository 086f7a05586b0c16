package emailtools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	domains map[string]bool
	queried []string
}

func (f *fakeResolver) HasMX(domain string) bool {
	f.queried = append(f.queried, domain)
	return f.domains[domain]
}

func TestValidateValidAddress(t *testing.T) {
	resolver := &fakeResolver{domains: map[string]bool{"example.org": true}}
	validator := NewValidator(resolver)

	isValid, message := validator.Validate("info@example.org")

	assert.True(t, isValid)
	assert.Equal(t, "Valid", message)
}

func TestValidateNoMXRecords(t *testing.T) {
	resolver := &fakeResolver{domains: map[string]bool{}}
	validator := NewValidator(resolver)

	isValid, message := validator.Validate("info@nomx.example")

	assert.False(t, isValid)
	assert.Equal(t, "Domain has no MX records", message)
}

func TestValidateSyntaxBeforeDNS(t *testing.T) {
	resolver := &fakeResolver{domains: map[string]bool{}}
	validator := NewValidator(resolver)

	for _, email := range []string{"not-an-email", "@nouser.org", "user@", "user@tld", "user@x.a"} {
		isValid, message := validator.Validate(email)
		assert.False(t, isValid, email)
		assert.Equal(t, "Invalid email format", message, email)
	}

	// A broken address must never trigger a DNS lookup.
	assert.Empty(t, resolver.queried)
}

func TestValidateBulk(t *testing.T) {
	resolver := &fakeResolver{domains: map[string]bool{"good.org": true}}
	validator := NewValidator(resolver)

	results := validator.ValidateBulk([]string{"a@good.org", "b@bad.org", "broken"})

	assert.Len(t, results, 3)
	assert.True(t, results[0].IsValid)
	assert.False(t, results[1].IsValid)
	assert.Equal(t, "Domain has no MX records", results[1].Message)
	assert.False(t, results[2].IsValid)
	assert.Equal(t, "Invalid email format", results[2].Message)
}

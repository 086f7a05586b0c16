package emailtools

import (
	"net/mail"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// MXResolver answers whether a domain publishes any MX record. Resolution
// errors count as "no": deliverability checks fail closed.
type MXResolver interface {
	HasMX(domain string) bool
}

// DNSResolver queries public resolvers directly, trying each until one
// answers.
type DNSResolver struct {
	client  *dns.Client
	servers []string
}

func NewDNSResolver(timeout time.Duration) *DNSResolver {
	return &DNSResolver{
		client:  &dns.Client{Timeout: timeout},
		servers: []string{"8.8.8.8:53", "1.1.1.1:53"},
	}
}

func (r *DNSResolver) HasMX(domain string) bool {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeMX)
	msg.RecursionDesired = true

	for _, server := range r.servers {
		resp, _, err := r.client.Exchange(msg, server)
		if err != nil {
			continue
		}
		if resp.Rcode == dns.RcodeSuccess && len(resp.Answer) > 0 {
			return true
		}
	}
	return false
}

// Validator checks addresses in two steps: syntax first, then the domain's MX
// record. The syntax check always runs before any DNS traffic.
type Validator struct {
	resolver MXResolver
}

func NewValidator(resolver MXResolver) *Validator {
	return &Validator{resolver: resolver}
}

// Validate reports whether the address looks deliverable and why not if it
// doesn't. It never returns an error: a broken address is a (false, reason)
// result.
func (v *Validator) Validate(email string) (bool, string) {
	domain, ok := checkSyntax(email)
	if !ok {
		return false, "Invalid email format"
	}

	if !v.resolver.HasMX(domain) {
		return false, "Domain has no MX records"
	}

	return true, "Valid"
}

// ValidationResult is one row of a bulk validation.
type ValidationResult struct {
	Email   string `json:"email"`
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
}

// ValidateBulk checks every address independently. Repeated domains are
// re-resolved; there is no memoization.
func (v *Validator) ValidateBulk(emails []string) []ValidationResult {
	results := make([]ValidationResult, 0, len(emails))
	for _, email := range emails {
		isValid, message := v.Validate(email)
		results = append(results, ValidationResult{
			Email:   email,
			IsValid: isValid,
			Message: message,
		})
	}
	return results
}

// checkSyntax validates the address shape and returns its domain. The domain
// must carry a dotted suffix of at least two letters.
func checkSyntax(email string) (string, bool) {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at <= 0 || at == len(addr.Address)-1 {
		return "", false
	}

	domain := addr.Address[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || len(domain)-dot-1 < 2 {
		return "", false
	}

	return domain, true
}

// Package templates holds the static outreach template set and renders it
// through the Liquid engine. Every placeholder referenced by a template must
// be present in the merged variable set before rendering starts.
package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/osteele/liquid"
)

// TemplateNotFoundError reports an unknown template name.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// MissingVariablesError lists exactly which placeholders had no value.
type MissingVariablesError struct {
	Template string
	Keys     []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("missing variables in template %q: %s", e.Template, strings.Join(e.Keys, ", "))
}

// Rendered is the outcome of a successful render.
type Rendered struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\}\}`)

// Manager renders the template set against a base variable map (the company
// profile) merged with per-call variables.
type Manager struct {
	templates map[string]Template
	engine    *liquid.Engine
	base      map[string]any
}

// NewManager builds a manager. base may be nil.
func NewManager(base map[string]any) *Manager {
	return &Manager{
		templates: builtinTemplates,
		engine:    liquid.NewEngine(),
		base:      base,
	}
}

// Render merges base and call variables (call wins), expands the list-shaped
// convenience keys, verifies every referenced placeholder resolves, and
// renders subject and body. Rendering is deterministic: equal inputs always
// produce equal output.
func (m *Manager) Render(name string, variables map[string]any) (*Rendered, error) {
	template, ok := m.templates[name]
	if !ok {
		return nil, &TemplateNotFoundError{Name: name}
	}

	merged := make(map[string]any, len(m.base)+len(variables))
	for key, value := range m.base {
		merged[key] = value
	}
	for key, value := range variables {
		merged[key] = value
	}

	expandLists(merged)

	if missing := missingKeys(template, merged); len(missing) > 0 {
		return nil, &MissingVariablesError{Template: name, Keys: missing}
	}

	subject, err := m.engine.ParseAndRenderString(template.Subject, merged)
	if err != nil {
		return nil, fmt.Errorf("render subject of %q: %w", name, err)
	}
	body, err := m.engine.ParseAndRenderString(template.Body, merged)
	if err != nil {
		return nil, fmt.Errorf("render body of %q: %w", name, err)
	}

	return &Rendered{Subject: subject, Body: body}, nil
}

// List returns the template names, sorted.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.templates))
	for name := range m.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a template exists.
func (m *Manager) Has(name string) bool {
	_, ok := m.templates[name]
	return ok
}

// ForLanguage resolves "<base>_<lang>", falling back to the English variant.
func (m *Manager) ForLanguage(baseName, language string) string {
	candidate := baseName + "_" + language
	if m.Has(candidate) {
		return candidate
	}
	return baseName + "_en"
}

// expandLists turns the specialization sequence into bulleted lines under the
// specialization_list key and joins certifications with commas, matching what
// the outreach copy expects.
func expandLists(vars map[string]any) {
	if items, ok := stringSlice(vars["specialization"]); ok {
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = "• " + item
		}
		vars["specialization_list"] = strings.Join(lines, "\n")
	}

	if items, ok := stringSlice(vars["certifications"]); ok {
		vars["certifications"] = strings.Join(items, ", ")
	}
}

func stringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return items, true
	default:
		return nil, false
	}
}

func missingKeys(template Template, vars map[string]any) []string {
	seen := map[string]bool{}
	var missing []string

	for _, text := range []string{template.Subject, template.Body} {
		for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
			key := match[1]
			if seen[key] {
				continue
			}
			seen[key] = true
			if _, ok := vars[key]; !ok {
				missing = append(missing, key)
			}
		}
	}

	sort.Strings(missing)
	return missing
}

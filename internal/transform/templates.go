package transform

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates a new template registry with built-in templates
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	return names
}

// CreateBuiltInTemplates creates a template registry with common salary scenarios
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// City templates
	registry.Register(Template{
		Name:        "metro",
		Description: "Reclassify the posting city as metro (50% HRA)",
		Transforms: []ScenarioTransform{
			&SetMetroCity{Metro: true},
		},
	})

	registry.Register(Template{
		Name:        "non_metro",
		Description: "Reclassify the posting city as non-metro (40% HRA)",
		Transforms: []ScenarioTransform{
			&SetMetroCity{Metro: false},
		},
	})

	// Provident fund templates
	registry.Register(Template{
		Name:        "with_pf",
		Description: "Include provident fund contributions in the CTC",
		Transforms: []ScenarioTransform{
			&SetPFIncluded{Included: true},
		},
	})

	registry.Register(Template{
		Name:        "no_pf",
		Description: "Exclude provident fund contributions from the CTC",
		Transforms: []ScenarioTransform{
			&SetPFIncluded{Included: false},
		},
	})

	// Salary growth templates
	registry.Register(Template{
		Name:        "hike_5pct",
		Description: "Apply a 5% appraisal hike to the gross salary",
		Transforms: []ScenarioTransform{
			&HikeSalary{Percent: decimal.NewFromInt(5)},
		},
	})

	registry.Register(Template{
		Name:        "hike_10pct",
		Description: "Apply a 10% appraisal hike to the gross salary",
		Transforms: []ScenarioTransform{
			&HikeSalary{Percent: decimal.NewFromInt(10)},
		},
	})

	registry.Register(Template{
		Name:        "hike_20pct",
		Description: "Apply a 20% switch-level hike to the gross salary",
		Transforms: []ScenarioTransform{
			&HikeSalary{Percent: decimal.NewFromInt(20)},
		},
	})

	registry.Register(Template{
		Name:        "lakh_plus",
		Description: "Raise the gross salary by 1 lakh",
		Transforms: []ScenarioTransform{
			&RaiseSalary{Amount: decimal.NewFromInt(100000)},
		},
	})

	// Combination templates - common offer shapes
	registry.Register(Template{
		Name:        "metro_hike_10pct",
		Description: "Relocate to a metro city with a 10% hike",
		Transforms: []ScenarioTransform{
			&SetMetroCity{Metro: true},
			&HikeSalary{Percent: decimal.NewFromInt(10)},
		},
	})

	registry.Register(Template{
		Name:        "non_metro_no_pf",
		Description: "Non-metro offer with PF excluded from the CTC",
		Transforms: []ScenarioTransform{
			&SetMetroCity{Metro: false},
			&SetPFIncluded{Included: false},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base scenario
func ApplyTemplate(base *domain.Scenario, template Template) (*domain.Scenario, error) {
	if len(template.Transforms) == 0 {
		copied := base.Copy()
		return &copied, nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	// Sort templates by category
	categories := map[string][]Template{
		"City Classification":    {},
		"Provident Fund":         {},
		"Salary Growth":          {},
		"Combination Strategies": {},
	}

	for _, template := range registry.templates {
		name := template.Name
		switch {
		case name == "metro" || name == "non_metro":
			categories["City Classification"] = append(categories["City Classification"], template)
		case name == "with_pf" || name == "no_pf":
			categories["Provident Fund"] = append(categories["Provident Fund"], template)
		case strings.HasPrefix(name, "hike_") || name == "lakh_plus":
			categories["Salary Growth"] = append(categories["Salary Growth"], template)
		default:
			categories["Combination Strategies"] = append(categories["Combination Strategies"], template)
		}
	}

	// Print each category
	for _, category := range []string{"City Classification", "Provident Fund", "Salary Growth", "Combination Strategies"} {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-30s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  ./taxgo whatif --gross 1500000 --metro --pf --with hike_10pct,no_pf\n")
	sb.WriteString("  ./taxgo whatif --gross 2400000 --with metro_hike_10pct,non_metro_no_pf\n")

	return sb.String()
}

package compare

import (
	"context"
	"fmt"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/domain"
	"github.com/taxgo/regime-calculator/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Templates []string // List of template names to apply to the base scenario
}

// Compare runs a base scenario and template-derived variants of it
func (ce *CompareEngine) Compare(
	ctx context.Context,
	base domain.Scenario,
	options CompareOptions,
) (*ComparisonSet, error) {

	ce.TemplateRegistry = transform.CreateBuiltInTemplates()

	if base.Name == "" {
		base.Name = "base"
	}

	// Calculate base scenario
	baseRun, err := ce.CalcEngine.RunComparison(base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(base.Name, baseRun)

	// Calculate alternative scenarios using templates
	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		// Apply template to create modified scenario
		modifiedScenario, err := transform.ApplyTemplate(&base, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		// Update scenario name to reflect the template
		modifiedScenario.Name = base.Name + "_" + template.Name

		// Calculate the modified scenario
		altRun, err := ce.CalcEngine.RunComparison(*modifiedScenario)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", templateName, err)
		}

		// Calculate metrics and comparison
		altResult := ce.MetricsCalculator.CalculateMetrics(modifiedScenario.Name, altRun)
		altResult.Description = template.Description
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	// Create comparison set
	compSet := &ComparisonSet{
		BaseScenarioName:   base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}

	// Generate recommendations
	compSet.Recommendations = GenerateRecommendations(compSet, ce.CalcEngine.Rules.HighIncomeThreshold)

	return compSet, nil
}

// CompareScenarios compares explicit scenarios (not using templates)
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	base domain.Scenario,
	alternatives []domain.Scenario,
) (*ComparisonSet, error) {

	if base.Name == "" {
		base.Name = "base"
	}

	baseRun, err := ce.CalcEngine.RunComparison(base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(base.Name, baseRun)

	alternativeResults := []ComparisonResult{}

	for _, scenario := range alternatives {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		altRun, err := ce.CalcEngine.RunComparison(scenario)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", scenario.Name, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(scenario.Name, altRun)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternativeResults = append(alternativeResults, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: alternativeResults,
	}

	compSet.Recommendations = GenerateRecommendations(compSet, ce.CalcEngine.Rules.HighIncomeThreshold)

	return compSet, nil
}

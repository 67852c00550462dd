package transform

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	// Register all built-in transforms
	registry.Register("hike_salary", createHikeSalary)
	registry.Register("raise_salary", createRaiseSalary)
	registry.Register("set_salary", createSetSalary)
	registry.Register("set_metro_city", createSetMetroCity)
	registry.Register("set_pf_included", createSetPFIncluded)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "hike_salary:percent=12.5"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	// Parse parameters
	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func createHikeSalary(params map[string]string) (ScenarioTransform, error) {
	percentStr, ok := params["percent"]
	if !ok {
		return nil, fmt.Errorf("hike_salary requires 'percent' parameter")
	}

	percent, err := decimal.NewFromString(percentStr)
	if err != nil {
		return nil, fmt.Errorf("invalid percent value: %w", err)
	}

	return &HikeSalary{
		Percent: percent,
	}, nil
}

func createRaiseSalary(params map[string]string) (ScenarioTransform, error) {
	amountStr, ok := params["amount"]
	if !ok {
		return nil, fmt.Errorf("raise_salary requires 'amount' parameter")
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("invalid amount value: %w", err)
	}

	return &RaiseSalary{
		Amount: amount,
	}, nil
}

func createSetSalary(params map[string]string) (ScenarioTransform, error) {
	amountStr, ok := params["amount"]
	if !ok {
		return nil, fmt.Errorf("set_salary requires 'amount' parameter")
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("invalid amount value: %w", err)
	}

	return &SetSalary{
		Amount: amount,
	}, nil
}

func createSetMetroCity(params map[string]string) (ScenarioTransform, error) {
	metroStr, ok := params["metro"]
	if !ok {
		return nil, fmt.Errorf("set_metro_city requires 'metro' parameter")
	}

	return &SetMetroCity{
		Metro: parseBoolParam(metroStr),
	}, nil
}

func createSetPFIncluded(params map[string]string) (ScenarioTransform, error) {
	includedStr, ok := params["included"]
	if !ok {
		return nil, fmt.Errorf("set_pf_included requires 'included' parameter")
	}

	return &SetPFIncluded{
		Included: parseBoolParam(includedStr),
	}, nil
}

func parseBoolParam(s string) bool {
	return s == "true" || s == "yes" || s == "1"
}

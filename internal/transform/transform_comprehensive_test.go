package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewTransformRegistry(t *testing.T) {
	registry := NewTransformRegistry()

	assert.NotNil(t, registry, "Should create registry")
	assert.NotNil(t, registry.factories, "Should initialize factories map")
	assert.Greater(t, len(registry.factories), 0, "Should have built-in transforms registered")
}

func TestTransformRegistry_Register(t *testing.T) {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	// Register a test factory
	factory := func(params map[string]string) (ScenarioTransform, error) {
		return &HikeSalary{Percent: decimal.NewFromInt(10)}, nil
	}

	registry.Register("test_transform", factory)

	assert.Contains(t, registry.factories, "test_transform", "Should register transform")
	assert.NotNil(t, registry.factories["test_transform"], "Should store factory function")
}

func TestTransformRegistry_Create_UnknownTransform(t *testing.T) {
	registry := NewTransformRegistry()

	transform, err := registry.Create("unknown_transform", map[string]string{})

	assert.Error(t, err, "Should error for unknown transform")
	assert.Nil(t, transform, "Should return nil transform")
	assert.Contains(t, err.Error(), "unknown transform", "Should have specific error message")
}

func TestTransformRegistry_Create_ValidTransform(t *testing.T) {
	registry := NewTransformRegistry()

	params := map[string]string{
		"percent": "12.5",
	}

	transform, err := registry.Create("hike_salary", params)

	assert.NoError(t, err, "Should not error for valid transform")
	assert.NotNil(t, transform, "Should return transform")
	assert.Equal(t, "hike_salary", transform.Name(), "Should have correct name")
}

func TestTransformRegistry_Create_MissingParameter(t *testing.T) {
	registry := NewTransformRegistry()

	transform, err := registry.Create("hike_salary", map[string]string{})

	assert.Error(t, err, "Should error when required parameter is missing")
	assert.Nil(t, transform, "Should return nil transform")
	assert.Contains(t, err.Error(), "requires 'percent'", "Should name the missing parameter")
}

func TestTransformRegistry_Create_InvalidParameterValue(t *testing.T) {
	registry := NewTransformRegistry()

	params := map[string]string{
		"percent": "not-a-number",
	}

	transform, err := registry.Create("hike_salary", params)

	assert.Error(t, err, "Should error for unparseable parameter")
	assert.Nil(t, transform, "Should return nil transform")
	assert.Contains(t, err.Error(), "invalid percent value", "Should have specific error message")
}

func TestTransformRegistry_List(t *testing.T) {
	registry := NewTransformRegistry()

	transforms := registry.List()

	assert.NotEmpty(t, transforms, "Should list transforms")
	assert.Contains(t, transforms, "hike_salary", "Should include hike_salary")
	assert.Contains(t, transforms, "set_metro_city", "Should include set_metro_city")
	assert.Contains(t, transforms, "set_pf_included", "Should include set_pf_included")
}

func TestParseTransformSpec_Valid(t *testing.T) {
	registry := NewTransformRegistry()
	base := createTestScenario()

	transform, err := registry.ParseTransformSpec("hike_salary:percent=10")
	assert.NoError(t, err, "Should parse valid spec")

	result, err := transform.Apply(base)
	assert.NoError(t, err, "Should apply parsed transform")
	assert.True(t, result.GrossAnnual.Equal(decimal.NewFromInt(1650000)),
		"Should hike 1500000 by 10%% to 1650000, got %s", result.GrossAnnual.String())
}

func TestParseTransformSpec_MultipleParams(t *testing.T) {
	registry := NewTransformRegistry()

	transform, err := registry.ParseTransformSpec("set_metro_city:metro=true")
	assert.NoError(t, err, "Should parse spec with boolean parameter")

	base := createTestScenario()
	base.IsMetroCity = false

	result, err := transform.Apply(base)
	assert.NoError(t, err, "Should apply parsed transform")
	assert.True(t, result.IsMetroCity, "Should set metro flag")
}

func TestParseTransformSpec_InvalidFormat(t *testing.T) {
	registry := NewTransformRegistry()

	transform, err := registry.ParseTransformSpec("hike_salary")

	assert.Error(t, err, "Should error for spec without parameters")
	assert.Nil(t, transform, "Should return nil transform")
	assert.Contains(t, err.Error(), "invalid transform spec format", "Should have specific error message")
}

func TestParseTransformSpec_InvalidParameterFormat(t *testing.T) {
	registry := NewTransformRegistry()

	transform, err := registry.ParseTransformSpec("hike_salary:percent")

	assert.Error(t, err, "Should error for parameter without value")
	assert.Nil(t, transform, "Should return nil transform")
	assert.Contains(t, err.Error(), "invalid parameter format", "Should have specific error message")
}

func TestParseTransformSpec_BooleanSpellings(t *testing.T) {
	registry := NewTransformRegistry()
	base := createTestScenario()

	for _, spelling := range []string{"true", "yes", "1"} {
		transform, err := registry.ParseTransformSpec("set_pf_included:included=" + spelling)
		assert.NoError(t, err, "Should parse boolean spelling %q", spelling)

		result, err := transform.Apply(base)
		assert.NoError(t, err)
		assert.True(t, result.PFIncluded, "Spelling %q should set the PF flag", spelling)
	}

	transform, err := registry.ParseTransformSpec("set_pf_included:included=0")
	assert.NoError(t, err)

	result, err := transform.Apply(base)
	assert.NoError(t, err)
	assert.False(t, result.PFIncluded, "Spelling \"0\" should clear the PF flag")
}

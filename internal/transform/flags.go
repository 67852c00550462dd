package transform

import (
	"github.com/taxgo/regime-calculator/internal/domain"
)

// SetMetroCity changes the city classification of the scenario. The metro
// flag drives the HRA component of the salary structure, so this models a
// relocation between metro and non-metro postings.
type SetMetroCity struct {
	Metro bool // true for metro city, false for non-metro
}

func (sm *SetMetroCity) Name() string {
	return "set_metro_city"
}

func (sm *SetMetroCity) Description() string {
	if sm.Metro {
		return "Treat the posting city as metro for HRA purposes"
	}
	return "Treat the posting city as non-metro for HRA purposes"
}

func (sm *SetMetroCity) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sm.Name(), "validate", "base scenario cannot be nil", nil)
	}
	return nil
}

func (sm *SetMetroCity) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Copy()

	modified.IsMetroCity = sm.Metro

	return &modified, nil
}

// SetPFIncluded changes whether provident fund contributions are part of
// the CTC. Excluding PF models consultant-style offers where the employer
// pays no PF and the employee forgoes the matching 80C deduction.
type SetPFIncluded struct {
	Included bool // true to include PF in the CTC, false to exclude it
}

func (sp *SetPFIncluded) Name() string {
	return "set_pf_included"
}

func (sp *SetPFIncluded) Description() string {
	if sp.Included {
		return "Include provident fund contributions in the CTC"
	}
	return "Exclude provident fund contributions from the CTC"
}

func (sp *SetPFIncluded) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sp.Name(), "validate", "base scenario cannot be nil", nil)
	}
	return nil
}

func (sp *SetPFIncluded) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Copy()

	modified.PFIncluded = sp.Included

	return &modified, nil
}

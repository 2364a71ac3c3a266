// Package prompts provides the per-category checklists of guiding
// questions, with workspace-wide overrides stored as full replacements.
package prompts

import (
	"tableflip.dev/pestle/pkg/category"
	"tableflip.dev/pestle/pkg/store"
)

var defaults = map[category.Category][]string{
	category.Political: {
		"What government policies or political events could impact the organization?",
		"Are there upcoming elections or changes in leadership?",
		"Is there political instability or unrest in the region?",
	},
	category.Economic: {
		"Are there economic trends or crises that could affect operations?",
		"What is the inflation or unemployment rate?",
		"Are there supply chain or market risks?",
	},
	category.Social: {
		"Are there demographic or cultural factors to consider?",
		"What social movements or trends are relevant?",
		"Are there workforce or public perception issues?",
	},
	category.Technological: {
		"Are there emerging technologies that could pose risks or opportunities?",
		"Is there a risk of obsolescence or technical debt?",
		"Are there vulnerabilities in current technology stacks?",
	},
	category.Legal: {
		"Are there regulatory or compliance requirements?",
		"Are there pending lawsuits or legal changes?",
		"What data privacy or intellectual property laws apply?",
	},
	category.Environmental: {
		"Are there environmental risks (natural disasters, climate change)?",
		"Are there sustainability or regulatory pressures?",
		"What is the organization's environmental impact?",
	},
}

// Defaults returns a copy of the built-in checklist for c.
func Defaults(c category.Category) []string {
	return append([]string(nil), defaults[c]...)
}

// Service resolves checklists against stored overrides.
type Service struct {
	Gateway store.Gateway
}

// For returns the active checklist for c: the stored override when one
// exists and is non-empty, otherwise the built-in default.
func (s *Service) For(c category.Category) []string {
	overrides := s.Gateway.ReadPromptOverrides()
	if custom, ok := overrides[c]; ok && len(custom) > 0 {
		return append([]string(nil), custom...)
	}
	return Defaults(c)
}

// Overridden reports whether c has a stored non-empty override.
func (s *Service) Overridden(c category.Category) bool {
	custom, ok := s.Gateway.ReadPromptOverrides()[c]
	return ok && len(custom) > 0
}

// Set replaces the checklist for c. Overrides are whole sequences, not
// deltas; other categories are left untouched.
func (s *Service) Set(c category.Category, checklist []string) error {
	overrides := s.Gateway.ReadPromptOverrides()
	overrides[c] = append([]string(nil), checklist...)
	return s.Gateway.WritePromptOverrides(overrides)
}

// Reset removes the override for c, restoring the built-in default.
func (s *Service) Reset(c category.Category) error {
	overrides := s.Gateway.ReadPromptOverrides()
	if _, ok := overrides[c]; !ok {
		return nil
	}
	delete(overrides, c)
	return s.Gateway.WritePromptOverrides(overrides)
}

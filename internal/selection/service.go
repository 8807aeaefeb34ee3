// Package selection turns a map click into the text shown in the side panel.
package selection

import (
	"strings"

	"skinatlas/internal/facts"
)

// FactReader is the read side of the fact store.
type FactReader interface {
	Get(country string) (facts.CountryRecord, bool)
}

// Service resolves clicks against a fact table. It holds no mutable state;
// every call is independent and safe to run concurrently.
type Service struct {
	facts FactReader
}

// New constructs a selection service.
func New(reader FactReader) *Service {
	return &Service{facts: reader}
}

// OnCountryClicked returns the panel content for a click. A nil country means
// nothing has been clicked yet.
func (s *Service) OnCountryClicked(country *string) DisplayPayload {
	payload, _ := s.Resolve(country)
	return payload
}

// Resolve is OnCountryClicked plus how the lookup went. Unknown countries get
// the default record; there is no failure path.
func (s *Service) Resolve(country *string) (DisplayPayload, Outcome) {
	if country == nil {
		return DisplayPayload{Title: "", Body: PromptText}, OutcomeNone
	}

	outcome := OutcomeFound
	record, ok := s.facts.Get(*country)
	if !ok {
		record = facts.DefaultRecord()
		outcome = OutcomeDefault
	}

	sections := Sections(record)
	return DisplayPayload{
		Title:    TitlePrefix + *country,
		Body:     FormatBody(sections),
		Sections: sections,
	}, outcome
}

// Sections lays a record out in panel order.
func Sections(r facts.CountryRecord) []Section {
	return []Section{
		{Label: LabelAdaptationMechanisms, Value: r.AdaptationMechanisms},
		{Label: LabelHistoricalContext, Value: r.HistoricalContext},
		{Label: LabelModernChallenges, Value: r.ModernChallenges},
		{Label: LabelExceptions, Value: r.Exceptions},
		{Label: LabelLifestyleImpact, Value: r.LifestyleImpact},
	}
}

// FormatBody renders sections as "<Label>: <value>" paragraphs separated by a
// blank line.
func FormatBody(sections []Section) string {
	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(sec.Label)
		b.WriteString(": ")
		b.WriteString(sec.Value)
	}
	return b.String()
}

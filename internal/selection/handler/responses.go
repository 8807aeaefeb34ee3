package handler

import "skinatlas/internal/selection"

// SelectionResponse is the HTTP response for /api/selection.
type SelectionResponse struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Sections []SectionResponse `json:"sections"`
}

// SectionResponse is one labeled paragraph.
type SectionResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FromPayload converts a display payload to its HTTP response.
func FromPayload(p selection.DisplayPayload) *SelectionResponse {
	sections := make([]SectionResponse, 0, len(p.Sections))
	for _, s := range p.Sections {
		sections = append(sections, SectionResponse{Label: s.Label, Value: s.Value})
	}
	return &SelectionResponse{
		Title:    p.Title,
		Body:     p.Body,
		Sections: sections,
	}
}

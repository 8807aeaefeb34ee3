package handler

// SelectRequest is the HTTP body for POST /api/selection. It accepts either
// {"country": "<label>"} or the raw plotly click event
// {"points": [{"hovertext": "<label>"}]}. A null or absent country with no
// points is a null selection.
type SelectRequest struct {
	Country *string      `json:"country"`
	Points  []ClickPoint `json:"points"`
}

// ClickPoint is one point of a plotly click event.
type ClickPoint struct {
	HoverText *string `json:"hovertext"`
	Location  string  `json:"location,omitempty"`
}

// Validate normalizes the click event into Country.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SelectRequest) Validate() error {
	if r.Country == nil && len(r.Points) > 0 {
		r.Country = r.Points[0].HoverText
	}
	return nil
}

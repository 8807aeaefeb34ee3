package selection

// PromptText is the body shown before any country has been clicked.
const PromptText = "Click on a country to view adaptations."

// TitlePrefix precedes the country name in the panel title.
const TitlePrefix = "Adaptations in "

// Display labels in panel order.
const (
	LabelAdaptationMechanisms = "Adaptation Mechanisms"
	LabelHistoricalContext    = "Historical Context"
	LabelModernChallenges     = "Modern Challenges"
	LabelExceptions           = "Exceptions"
	LabelLifestyleImpact      = "Impact of Lifestyle"
)

// DisplayPayload is what the side panel renders.
type DisplayPayload struct {
	Title string
	Body  string
	// Sections carries Body pre-split into labeled paragraphs. Empty when no
	// country is selected.
	Sections []Section
}

// Section is one labeled paragraph of the panel.
type Section struct {
	Label string
	Value string
}

// Outcome classifies how a click was resolved.
type Outcome string

const (
	OutcomeNone    Outcome = "none"
	OutcomeFound   Outcome = "found"
	OutcomeDefault Outcome = "default"
)

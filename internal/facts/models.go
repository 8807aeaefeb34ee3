package facts

// NoInformation is the text every field of the default record carries.
const NoInformation = "No information available."

// CountryRecord holds the five fixed adaptation facts for one country.
// Records are values; a Store hands out copies.
type CountryRecord struct {
	AdaptationMechanisms string `yaml:"adaptation_mechanisms" json:"adaptation_mechanisms"`
	HistoricalContext    string `yaml:"historical_context" json:"historical_context"`
	ModernChallenges     string `yaml:"modern_challenges" json:"modern_challenges"`
	Exceptions           string `yaml:"exceptions" json:"exceptions"`
	LifestyleImpact      string `yaml:"lifestyle_impact" json:"lifestyle_impact"`
}

// DefaultRecord is substituted for countries the store does not know.
func DefaultRecord() CountryRecord {
	return CountryRecord{
		AdaptationMechanisms: NoInformation,
		HistoricalContext:    NoInformation,
		ModernChallenges:     NoInformation,
		Exceptions:           NoInformation,
		LifestyleImpact:      NoInformation,
	}
}

// Entry is one row as read from a source, before duplicates are resolved.
type Entry struct {
	Country       string `yaml:"country"`
	CountryRecord `yaml:",inline"`
}

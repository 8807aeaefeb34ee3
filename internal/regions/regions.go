// Package regions describes the labels the world map produces for each
// clickable country and checks them against the fact table.
package regions

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/regions.yaml
var embeddedRegions []byte

// Region is one clickable map area.
type Region struct {
	Name      string `yaml:"name" json:"name"`
	ISOAlpha3 string `yaml:"iso_alpha" json:"iso_alpha"`
}

// Parse decodes a regions document and returns the regions sorted by name.
func Parse(data []byte) ([]Region, error) {
	var doc struct {
		Regions []Region `yaml:"regions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode regions: %w", err)
	}
	for i, r := range doc.Regions {
		if r.Name == "" || len(r.ISOAlpha3) != 3 {
			return nil, fmt.Errorf("decode regions: entry %d is incomplete", i)
		}
	}
	sort.Slice(doc.Regions, func(i, j int) bool {
		return doc.Regions[i].Name < doc.Regions[j].Name
	})
	return doc.Regions, nil
}

// Default returns the bundled Gapminder 2007 country set the map draws.
func Default() []Region {
	regions, err := Parse(embeddedRegions)
	if err != nil {
		panic(err)
	}
	return regions
}

// Coverage compares map labels with fact keys.
type Coverage struct {
	// Matched fact keys that a map label produces.
	Matched []string
	// Unlabeled fact keys no map label produces; they can never be clicked.
	Unlabeled []string
	// Uncovered map labels with no fact; clicking them shows the default record.
	Uncovered []string
}

// CheckCoverage reports how the fact keys line up with the map labels.
// Matching is exact, the same rule the lookup uses.
func CheckCoverage(labels []Region, countries []string) Coverage {
	labelSet := make(map[string]struct{}, len(labels))
	for _, r := range labels {
		labelSet[r.Name] = struct{}{}
	}
	factSet := make(map[string]struct{}, len(countries))

	var cov Coverage
	for _, c := range countries {
		factSet[c] = struct{}{}
		if _, ok := labelSet[c]; ok {
			cov.Matched = append(cov.Matched, c)
		} else {
			cov.Unlabeled = append(cov.Unlabeled, c)
		}
	}
	for _, r := range labels {
		if _, ok := factSet[r.Name]; !ok {
			cov.Uncovered = append(cov.Uncovered, r.Name)
		}
	}
	sort.Strings(cov.Matched)
	sort.Strings(cov.Unlabeled)
	sort.Strings(cov.Uncovered)
	return cov
}

package selection

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, query url.Values) error
	POST(path string, body interface{}) error
	GetLastResponseBody() []byte
	GetResponseField(field string) (interface{}, error)
}

// RegisterSteps registers map click and side panel steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &selectionSteps{tc: tc}

	ctx.Step(`^I click on "([^"]*)"$`, steps.clickOn)
	ctx.Step(`^I click on "([^"]*)" on the map$`, steps.clickOnMap)
	ctx.Step(`^nothing has been clicked$`, steps.nothingClicked)
	ctx.Step(`^I remember the panel$`, steps.rememberPanel)

	ctx.Step(`^the panel title should be "([^"]*)"$`, steps.titleShouldBe)
	ctx.Step(`^the panel should read "([^"]*)"$`, steps.bodyShouldBe)
	ctx.Step(`^the panel should show "([^"]*)" as "([^"]*)"$`, steps.sectionShouldBe)
	ctx.Step(`^the panel should contain "([^"]*)" (\d+) times$`, steps.bodyShouldContainTimes)
	ctx.Step(`^the panel labels should be in order:$`, steps.labelsInOrder)
	ctx.Step(`^the panel should be unchanged$`, steps.panelUnchanged)
}

type panel struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Sections []struct {
		Label string `json:"label"`
		Value string `json:"value"`
	} `json:"sections"`
}

type selectionSteps struct {
	tc         TestContext
	remembered []byte
}

func (s *selectionSteps) clickOn(ctx context.Context, country string) error {
	return s.tc.POST("/api/selection", map[string]interface{}{"country": country})
}

// clickOnMap posts the click event shape plotly emits for a choropleth.
func (s *selectionSteps) clickOnMap(ctx context.Context, country string) error {
	return s.tc.POST("/api/selection", map[string]interface{}{
		"points": []map[string]interface{}{{"hovertext": country}},
	})
}

func (s *selectionSteps) nothingClicked(ctx context.Context) error {
	return s.tc.GET("/api/selection", nil)
}

func (s *selectionSteps) rememberPanel(ctx context.Context) error {
	s.remembered = append([]byte(nil), s.tc.GetLastResponseBody()...)
	return nil
}

func (s *selectionSteps) current() (panel, error) {
	var p panel
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &p); err != nil {
		return p, fmt.Errorf("decode panel: %w", err)
	}
	return p, nil
}

func (s *selectionSteps) titleShouldBe(ctx context.Context, want string) error {
	p, err := s.current()
	if err != nil {
		return err
	}
	if p.Title != want {
		return fmt.Errorf("expected title %q, got %q", want, p.Title)
	}
	return nil
}

func (s *selectionSteps) bodyShouldBe(ctx context.Context, want string) error {
	p, err := s.current()
	if err != nil {
		return err
	}
	if p.Body != want {
		return fmt.Errorf("expected body %q, got %q", want, p.Body)
	}
	return nil
}

func (s *selectionSteps) sectionShouldBe(ctx context.Context, label, want string) error {
	p, err := s.current()
	if err != nil {
		return err
	}
	for _, sec := range p.Sections {
		if sec.Label == label {
			if sec.Value != want {
				return fmt.Errorf("expected %s %q, got %q", label, want, sec.Value)
			}
			return nil
		}
	}
	return fmt.Errorf("panel has no %q section", label)
}

func (s *selectionSteps) bodyShouldContainTimes(ctx context.Context, text string, n int) error {
	p, err := s.current()
	if err != nil {
		return err
	}
	if got := strings.Count(p.Body, text); got != n {
		return fmt.Errorf("expected %q %d times, found %d", text, n, got)
	}
	return nil
}

func (s *selectionSteps) labelsInOrder(ctx context.Context, table *godog.Table) error {
	p, err := s.current()
	if err != nil {
		return err
	}
	if len(table.Rows) != len(p.Sections) {
		return fmt.Errorf("expected %d sections, got %d", len(table.Rows), len(p.Sections))
	}
	for i, row := range table.Rows {
		if want := row.Cells[0].Value; p.Sections[i].Label != want {
			return fmt.Errorf("section %d: expected %q, got %q", i, want, p.Sections[i].Label)
		}
	}
	return nil
}

func (s *selectionSteps) panelUnchanged(ctx context.Context) error {
	if string(s.remembered) != string(s.tc.GetLastResponseBody()) {
		return fmt.Errorf("panel changed between identical clicks")
	}
	return nil
}

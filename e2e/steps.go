package e2e

import (
	"github.com/cucumber/godog"

	"skinatlas/e2e/steps/common"
	"skinatlas/e2e/steps/selection"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Generic requests and response assertions
	common.RegisterSteps(ctx, tc)

	// Map click and side panel steps
	selection.RegisterSteps(ctx, tc)
}

package ports

import "print-optimizer-service/internal/domain"

// A named print queue together with the printer it runs on.
type PrintScenario struct {
	Name        string
	Jobs        []domain.PrintJob
	Constraints domain.PrinterConstraints
}

// A named rod length with its price table.
type RodScenario struct {
	Name   string
	Length int
	Prices []float64
}

// Port: a boundary for retrieving demonstration inputs.
type ScenarioSource interface {
	PrintScenarios() []PrintScenario
	RodScenarios() []RodScenario
}

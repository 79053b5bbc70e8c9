package scenarios

import (
	"print-optimizer-service/internal/domain"
	"print-optimizer-service/internal/ports"
	"print-optimizer-service/internal/services"
	"testing"
)

var _ ports.ScenarioSource = (*Builtin)(nil)

func TestBuiltinPrintScenariosSchedule(t *testing.T) {
	src := NewBuiltin(domain.PrinterConstraints{MaxVolume: 300, MaxItems: 2})

	wantTimes := map[string]float64{
		"equal priority":       270,
		"different priorities": 270,
		"exceeding limits":     450,
	}

	scenarios := src.PrintScenarios()
	if len(scenarios) != len(wantTimes) {
		t.Fatalf("got %d print scenarios, want %d", len(scenarios), len(wantTimes))
	}

	for _, s := range scenarios {
		res, err := services.OptimizePrinting(s.Jobs, s.Constraints)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s.Name, err)
		}
		if res.TotalTime != wantTimes[s.Name] {
			t.Errorf("%s: total time = %v, want %v", s.Name, res.TotalTime, wantTimes[s.Name])
		}
	}
}

func TestBuiltinRodScenariosAreCopies(t *testing.T) {
	src := NewBuiltin(domain.PrinterConstraints{MaxVolume: 300, MaxItems: 2})

	first := src.RodScenarios()
	first[0].Prices[0] = 999

	second := src.RodScenarios()
	if second[0].Prices[0] == 999 {
		t.Fatalf("mutating a returned scenario leaked into the catalogue")
	}

	for _, s := range second {
		if len(s.Prices) < s.Length {
			t.Errorf("%s: %d prices for length %d", s.Name, len(s.Prices), s.Length)
		}
	}
}

package scenarios

import (
	"print-optimizer-service/internal/domain"
	"print-optimizer-service/internal/ports"
	"slices"
)

// Builtin serves the fixed demonstration inputs shipped with the CLI.
// Every call returns fresh copies, so callers may modify them freely.
type Builtin struct {
	printer domain.PrinterConstraints
}

// NewBuiltin returns the demo catalogue with every print scenario running on printer.
func NewBuiltin(printer domain.PrinterConstraints) *Builtin {
	return &Builtin{printer: printer}
}

func (b *Builtin) PrintScenarios() []ports.PrintScenario {
	return []ports.PrintScenario{
		{
			Name: "equal priority",
			Jobs: []domain.PrintJob{
				{ID: "M1", Volume: 100, Priority: 1, PrintTime: 120},
				{ID: "M2", Volume: 150, Priority: 1, PrintTime: 90},
				{ID: "M3", Volume: 120, Priority: 1, PrintTime: 150},
			},
			Constraints: b.printer,
		},
		{
			Name: "different priorities",
			Jobs: []domain.PrintJob{
				{ID: "M1", Volume: 100, Priority: 2, PrintTime: 120},
				{ID: "M2", Volume: 150, Priority: 1, PrintTime: 90},
				{ID: "M3", Volume: 120, Priority: 3, PrintTime: 150},
			},
			Constraints: b.printer,
		},
		{
			Name: "exceeding limits",
			Jobs: []domain.PrintJob{
				{ID: "M1", Volume: 250, Priority: 1, PrintTime: 180},
				{ID: "M2", Volume: 200, Priority: 1, PrintTime: 150},
				{ID: "M3", Volume: 180, Priority: 2, PrintTime: 120},
			},
			Constraints: b.printer,
		},
	}
}

var rodScenarios = []ports.RodScenario{
	{Name: "basic case", Length: 5, Prices: []float64{2, 5, 7, 8, 10}},
	{Name: "do not cut", Length: 3, Prices: []float64{1, 3, 8}},
	{Name: "uniform cuts", Length: 4, Prices: []float64{3, 5, 6, 7}},
}

func (b *Builtin) RodScenarios() []ports.RodScenario {
	out := make([]ports.RodScenario, 0, len(rodScenarios))
	for _, s := range rodScenarios {
		s.Prices = slices.Clone(s.Prices)
		out = append(out, s)
	}
	return out
}

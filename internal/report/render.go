package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	green = color.New(color.Bold, color.FgGreen).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

// Renderer writes results either as indented JSON or as colored text.
type Renderer struct {
	W    io.Writer
	JSON bool
}

func (r *Renderer) WriteJSON(v any) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}

func (r *Renderer) Schedule(s ScheduleResponse) error {
	if r.JSON {
		return r.WriteJSON(s)
	}

	if s.Scenario != "" {
		fmt.Fprintf(r.W, "%s %s\n", bold("Print queue:"), cyan(s.Scenario))
	}
	fmt.Fprintf(r.W, "  Print order: %s\n", strings.Join(s.PrintOrder, " -> "))
	fmt.Fprintf(r.W, "  Total time:  %s minutes\n", green(formatNumber(s.TotalTime)))
	return nil
}

func (r *Renderer) Cutting(c CuttingResponse) error {
	if r.JSON {
		return r.WriteJSON(c)
	}

	if c.Scenario != "" {
		fmt.Fprintf(r.W, "%s %s %s\n", bold("Rod cutting:"), cyan(c.Scenario), dim("("+c.Method+")"))
	} else {
		fmt.Fprintf(r.W, "%s %s\n", bold("Rod cutting:"), dim("("+c.Method+")"))
	}
	fmt.Fprintf(r.W, "  Rod length:     %d\n", c.Length)
	fmt.Fprintf(r.W, "  Maximum profit: %s\n", green(formatNumber(c.MaxProfit)))
	fmt.Fprintf(r.W, "  Cuts:           %s\n", formatCuts(c.Cuts))
	fmt.Fprintf(r.W, "  Number of cuts: %d\n", c.NumberOfCuts)
	return nil
}

func (r *Renderer) Demo(d DemoResponse) error {
	if r.JSON {
		return r.WriteJSON(d)
	}

	for _, s := range d.Schedules {
		if err := r.Schedule(s); err != nil {
			return err
		}
		fmt.Fprintln(r.W)
	}
	for _, c := range d.Cuttings {
		if err := r.Cutting(c); err != nil {
			return err
		}
		fmt.Fprintln(r.W)
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCuts(cuts []int) string {
	if len(cuts) == 0 {
		return dim("none")
	}
	parts := make([]string, 0, len(cuts))
	for _, c := range cuts {
		parts = append(parts, strconv.Itoa(c))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

package main

import (
	"context"
	"fmt"
	"slices"

	"print-optimizer-service/internal/adapters/scenarios"
	"print-optimizer-service/internal/config"
	"print-optimizer-service/internal/domain"
	"print-optimizer-service/internal/platform/obs"
	"print-optimizer-service/internal/ports"
	"print-optimizer-service/internal/report"
	"print-optimizer-service/internal/services"

	"github.com/spf13/cobra"
)

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Group print jobs into batches and report the print order",
		Example: `  printq schedule --job M1:100:1:120 --job M2:150:1:90 --job M3:120:1:150
  printq schedule --max-volume 500 --max-items 3 --job A:200:2:45 --job B:250:1:60`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := make([]domain.PrintJob, 0, len(flagJobs))
			for _, raw := range flagJobs {
				job, err := parseJob(raw)
				if err != nil {
					return err
				}
				jobs = append(jobs, job)
			}

			res, err := runSchedule(cmd.Context(), jobs, printerFromFlags())
			if err != nil {
				return err
			}
			return renderer(cmd).Schedule(report.NewScheduleResponse("", res))
		},
	}

	cmd.Flags().StringArrayVar(&flagJobs, "job", nil, "Print job as ID:VOLUME:PRIORITY:TIME (repeatable)")
	return cmd
}

func rodcutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rodcut",
		Short:   "Find the most profitable way to cut a rod",
		Example: `  printq rodcut --length 5 --prices 2,5,7,8,10 --method both`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runRodCutting(cmd.Context(), "", flagLength, flagPrices, flagMethod)
			if err != nil {
				return err
			}

			r := renderer(cmd)
			if r.JSON && len(results) > 1 {
				return r.WriteJSON(results)
			}
			for _, c := range results {
				if err := r.Cutting(c); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flagLength, "length", 0, "Rod length")
	cmd.Flags().Float64SliceVar(&flagPrices, "prices", nil, "Comma-separated prices; the i-th entry is the price of a piece of length i")
	return cmd
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in print queue and rod cutting scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			demo, err := runDemo(cmd.Context(), scenarios.NewBuiltin(printerFromFlags()), flagMethod)
			if err != nil {
				return err
			}
			return renderer(cmd).Demo(*demo)
		},
	}
}

func runSchedule(ctx context.Context, jobs []domain.PrintJob, printer domain.PrinterConstraints) (_ *domain.ScheduleResult, err error) {
	defer obs.Time(ctx, "print.schedule")(&err)
	return services.OptimizePrinting(jobs, printer)
}

// runRodCutting runs the requested algorithm, or both, and fails if the two
// variants ever disagree.
func runRodCutting(ctx context.Context, scenario string, length int, prices []float64, method string) (_ []report.CuttingResponse, err error) {
	defer obs.Time(ctx, "rod.cut."+method)(&err)

	solvers := []struct {
		name  string
		solve func(int, []float64) (*domain.CuttingResult, error)
	}{
		{config.RodMethodMemo, services.RodCuttingMemo},
		{config.RodMethodTable, services.RodCuttingTable},
	}

	var out []report.CuttingResponse
	for _, s := range solvers {
		if method != config.RodMethodBoth && method != s.name {
			continue
		}
		res, err := s.solve(length, prices)
		if err != nil {
			return nil, err
		}
		out = append(out, report.NewCuttingResponse(scenario, s.name, length, res))
	}

	if len(out) == 2 && !sameCutting(out[0], out[1]) {
		return nil, fmt.Errorf("rod cutting: memo and table results differ for length %d", length)
	}
	return out, nil
}

func runDemo(ctx context.Context, src ports.ScenarioSource, method string) (*report.DemoResponse, error) {
	demo := &report.DemoResponse{}

	for _, s := range src.PrintScenarios() {
		res, err := runSchedule(ctx, s.Jobs, s.Constraints)
		if err != nil {
			return nil, fmt.Errorf("demo %q: %w", s.Name, err)
		}
		demo.Schedules = append(demo.Schedules, report.NewScheduleResponse(s.Name, res))
	}

	for _, s := range src.RodScenarios() {
		results, err := runRodCutting(ctx, s.Name, s.Length, s.Prices, method)
		if err != nil {
			return nil, fmt.Errorf("demo %q: %w", s.Name, err)
		}
		demo.Cuttings = append(demo.Cuttings, results...)
	}

	return demo, nil
}

func sameCutting(a, b report.CuttingResponse) bool {
	return a.MaxProfit == b.MaxProfit && a.NumberOfCuts == b.NumberOfCuts && slices.Equal(a.Cuts, b.Cuts)
}

func printerFromFlags() domain.PrinterConstraints {
	return domain.PrinterConstraints{MaxVolume: flagMaxVolume, MaxItems: flagMaxItems}
}

func renderer(cmd *cobra.Command) *report.Renderer {
	return &report.Renderer{W: cmd.OutOrStdout(), JSON: flagJSON}
}

package report

import "print-optimizer-service/internal/domain"

type ScheduleResponse struct {
	Scenario   string   `json:"scenario,omitempty"`
	PrintOrder []string `json:"print_order"`
	TotalTime  float64  `json:"total_time"`
}

type CuttingResponse struct {
	Scenario     string  `json:"scenario,omitempty"`
	Method       string  `json:"method"`
	Length       int     `json:"length"`
	MaxProfit    float64 `json:"max_profit"`
	Cuts         []int   `json:"cuts"`
	NumberOfCuts int     `json:"number_of_cuts"`
}

type DemoResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Cuttings  []CuttingResponse  `json:"cuttings"`
}

func NewScheduleResponse(scenario string, res *domain.ScheduleResult) ScheduleResponse {
	return ScheduleResponse{
		Scenario:   scenario,
		PrintOrder: res.PrintOrder,
		TotalTime:  res.TotalTime,
	}
}

func NewCuttingResponse(scenario, method string, length int, res *domain.CuttingResult) CuttingResponse {
	return CuttingResponse{
		Scenario:     scenario,
		Method:       method,
		Length:       length,
		MaxProfit:    res.MaxProfit,
		Cuts:         res.Cuts,
		NumberOfCuts: res.NumberOfCuts,
	}
}

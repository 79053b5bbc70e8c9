package domain

// Represents the most profitable way to cut a rod.
// Cuts holds piece lengths in the order they were chosen; their sum equals the
// rod length unless no cut is profitable, in which case Cuts is empty.
type CuttingResult struct {
	MaxProfit    float64
	Cuts         []int
	NumberOfCuts int
}

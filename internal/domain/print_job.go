package domain

// Represents a single model queued for the 3D printer.
// A PrintJob has a unique identifier within one scheduling call, the volume of
// material it occupies on the build plate, a priority (lower value prints
// earlier), and the time in minutes needed to print it.
type PrintJob struct {
	ID        string
	Volume    float64
	Priority  int
	PrintTime float64
}

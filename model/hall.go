package model

// SeatStatus is the availability state of a single seat.
type SeatStatus int

const (
	SeatAvailable SeatStatus = iota
	SeatBooked
)

// Report aggregates the state of a hall at the moment it was computed.
type Report struct {
	TicketsSold      int
	OccupancyPercent float64
	CurrentRevenue   int
	MaxRevenue       int
}

package engine

import (
	"cinema-hall-cli/model"
)

// Hall tracks seat availability for one screening room. Dimensions are fixed
// at creation; callers address seats with 1-indexed coordinates and the
// 0-indexed matrix never leaves this package.
type Hall struct {
	rows        int
	seatsPerRow int
	cells       [][]model.SeatStatus
}

// NewHall creates a hall with every seat available. Both dimensions must be
// at least 1; anything else is rejected with a *ConfigError.
func NewHall(rows int, seatsPerRow int) (*Hall, error) {
	if rows < 1 || seatsPerRow < 1 {
		return nil, &ConfigError{Rows: rows, SeatsPerRow: seatsPerRow}
	}
	cells := make([][]model.SeatStatus, rows)
	for i := range cells {
		cells[i] = make([]model.SeatStatus, seatsPerRow)
	}
	return &Hall{rows: rows, seatsPerRow: seatsPerRow, cells: cells}, nil
}

func (h *Hall) Rows() int {
	return h.rows
}

func (h *Hall) SeatsPerRow() int {
	return h.seatsPerRow
}

func (h *Hall) TotalSeats() int {
	return h.rows * h.seatsPerRow
}

// Booked reports whether the seat at the given 1-indexed coordinates is sold.
// Coordinates outside the hall are never booked.
func (h *Hall) Booked(rowNumber int, seatNumber int) bool {
	if !h.inBounds(rowNumber, seatNumber) {
		return false
	}
	return h.cells[rowNumber-1][seatNumber-1] == model.SeatBooked
}

// Layout returns a row-major copy of the seat matrix for rendering.
func (h *Hall) Layout() [][]model.SeatStatus {
	layout := make([][]model.SeatStatus, h.rows)
	for i, row := range h.cells {
		layout[i] = append([]model.SeatStatus(nil), row...)
	}
	return layout
}

// Purchase books the seat at the given 1-indexed coordinates and returns the
// charged price. It fails with *OutOfRangeError for coordinates outside the
// hall and with ErrAlreadyBooked for a seat that is already sold; the hall is
// left untouched on either failure.
func (h *Hall) Purchase(rowNumber int, seatNumber int) (int, error) {
	if !h.inBounds(rowNumber, seatNumber) {
		return 0, &OutOfRangeError{Row: rowNumber, Seat: seatNumber}
	}
	if h.cells[rowNumber-1][seatNumber-1] == model.SeatBooked {
		return 0, ErrAlreadyBooked
	}
	h.cells[rowNumber-1][seatNumber-1] = model.SeatBooked
	return SeatPrice(h.rows, h.seatsPerRow, rowNumber), nil
}

// Statistics scans the hall once and reports tickets sold, occupancy,
// current revenue and the revenue of a sold-out hall.
func (h *Hall) Statistics() model.Report {
	sold := 0
	revenue := 0
	for i, row := range h.cells {
		for _, status := range row {
			if status == model.SeatBooked {
				sold++
				revenue += SeatPrice(h.rows, h.seatsPerRow, i+1)
			}
		}
	}
	return model.Report{
		TicketsSold:      sold,
		OccupancyPercent: float64(sold) * 100.0 / float64(h.TotalSeats()),
		CurrentRevenue:   revenue,
		MaxRevenue:       CapacityRevenue(h.rows, h.seatsPerRow),
	}
}

func (h *Hall) inBounds(rowNumber int, seatNumber int) bool {
	return rowNumber >= 1 && rowNumber <= h.rows && seatNumber >= 1 && seatNumber <= h.seatsPerRow
}

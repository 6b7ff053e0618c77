package engine

const (
	// Halls with at most this many seats sell every ticket at the front price.
	uniformPricingThreshold = 60

	frontRowPrice = 10
	backRowPrice  = 8
)

// SeatPrice returns the ticket price for a seat in the given 1-indexed row.
// Small halls are priced uniformly; larger halls split into a front half of
// floor(rows/2) rows at the front price and a back half at the back price.
// An odd row count leaves the extra row in the back half.
func SeatPrice(rows int, seatsPerRow int, rowNumber int) int {
	if rows*seatsPerRow <= uniformPricingThreshold {
		return frontRowPrice
	}
	if rowNumber <= rows/2 {
		return frontRowPrice
	}
	return backRowPrice
}

// CapacityRevenue returns the revenue a hall earns with every seat sold.
// It is always equal to SeatPrice summed over every seat of every row.
func CapacityRevenue(rows int, seatsPerRow int) int {
	totalSeats := rows * seatsPerRow
	if totalSeats <= uniformPricingThreshold {
		return totalSeats * frontRowPrice
	}
	frontRows := rows / 2
	backRows := rows - frontRows
	return frontRows*seatsPerRow*frontRowPrice + backRows*seatsPerRow*backRowPrice
}

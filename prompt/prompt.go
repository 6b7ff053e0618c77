// Package prompt implements the classic line-oriented booking session:
// numbers are read as whitespace-separated tokens and every message is a
// fixed line, so the tool can be driven by a pipe as well as a keyboard.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"cinema-hall-cli/engine"
	"cinema-hall-cli/model"
)

var (
	errInputClosed = errors.New("input stream closed")
	errNotANumber  = errors.New("not a number")
)

// Run drives one booking session from setup to exit. It returns nil when the
// user picks the exit choice and an error when the input stream ends first.
func Run(in io.Reader, out io.Writer) error {
	words := bufio.NewScanner(in)
	words.Split(bufio.ScanWords)

	hall, err := configure(words, out)
	if err != nil {
		return err
	}

	for {
		printMenu(out)
		choice, err := readInt(words)
		if errors.Is(err, errInputClosed) {
			return err
		}
		if err != nil {
			fmt.Fprintln(out, "Enter a valid number")
			continue
		}

		switch choice {
		case 1:
			printLayout(out, hall)
		case 2:
			if err := buyTicket(words, out, hall); err != nil {
				return err
			}
		case 3:
			printStatistics(out, hall)
		case 0:
			return nil
		default:
			fmt.Fprintln(out, "Enter a valid number")
		}
	}
}

func configure(words *bufio.Scanner, out io.Writer) (*engine.Hall, error) {
	rows, err := readPositive(words, out, "Enter the number of rows:")
	if err != nil {
		return nil, err
	}
	seats, err := readPositive(words, out, "Enter the number of seats in each row:")
	if err != nil {
		return nil, err
	}
	return engine.NewHall(rows, seats)
}

func readPositive(words *bufio.Scanner, out io.Writer, promptLine string) (int, error) {
	for {
		fmt.Fprintln(out, promptLine)
		value, err := readInt(words)
		if errors.Is(err, errInputClosed) {
			return 0, err
		}
		if err != nil || value < 1 {
			fmt.Fprintln(out, "Please enter a positive number")
			continue
		}
		return value, nil
	}
}

func readInt(words *bufio.Scanner) (int, error) {
	if !words.Scan() {
		if err := words.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", errInputClosed, err)
		}
		return 0, errInputClosed
	}
	value, err := strconv.Atoi(words.Text())
	if err != nil {
		return 0, errNotANumber
	}
	return value, nil
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "1. Show the seats")
	fmt.Fprintln(out, "2. Buy a ticket")
	fmt.Fprintln(out, "3. Statistics")
	fmt.Fprintln(out, "0. Exit")
}

func printLayout(out io.Writer, hall *engine.Hall) {
	fmt.Fprintln(out, "Cinema:")

	fmt.Fprint(out, "  ")
	for seat := 1; seat <= hall.SeatsPerRow(); seat++ {
		fmt.Fprintf(out, "%d ", seat)
	}
	fmt.Fprintln(out)

	for i, row := range hall.Layout() {
		fmt.Fprintf(out, "%d ", i+1)
		for _, status := range row {
			if status == model.SeatBooked {
				fmt.Fprint(out, "B ")
			} else {
				fmt.Fprint(out, "S ")
			}
		}
		fmt.Fprintln(out)
	}
}

func buyTicket(words *bufio.Scanner, out io.Writer, hall *engine.Hall) error {
	fmt.Fprintln(out, "Enter a row number:")
	row, rowErr := readInt(words)
	if errors.Is(rowErr, errInputClosed) {
		return rowErr
	}
	fmt.Fprintln(out, "Enter a seat number in that row:")
	seat, seatErr := readInt(words)
	if errors.Is(seatErr, errInputClosed) {
		return seatErr
	}
	if rowErr != nil || seatErr != nil {
		fmt.Fprintln(out, "Wrong input!")
		return nil
	}

	price, err := hall.Purchase(row, seat)
	switch {
	case engine.IsAlreadyBooked(err):
		fmt.Fprintln(out, "That ticket has already been purchased!")
	case engine.IsOutOfRange(err):
		fmt.Fprintln(out, "Wrong input!")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "Ticket price: $%d\n", price)
	}
	return nil
}

func printStatistics(out io.Writer, hall *engine.Hall) {
	report := hall.Statistics()
	fmt.Fprintf(out, "Number of purchased tickets: %d\n", report.TicketsSold)
	fmt.Fprintf(out, "Percentage: %.2f%%\n", report.OccupancyPercent)
	fmt.Fprintf(out, "Current income: $%d\n", report.CurrentRevenue)
	fmt.Fprintf(out, "Total income: $%d\n", report.MaxRevenue)
}

package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const maxRecentHalls = 8

// RecentHall is a hall layout used in a previous run, kept only to prefill
// the setup form. Booking state is never written anywhere.
type RecentHall struct {
	Rows        int `json:"rows"`
	SeatsPerRow int `json:"seats_per_row"`
}

type hallHistory struct {
	Halls []RecentHall `json:"halls"`
}

// LoadRecentHalls returns previously used hall layouts, newest first.
func LoadRecentHalls() ([]RecentHall, error) {
	path, err := configPath("history.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history hallHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid hall history format")
	}
	return history.Halls, nil
}

// RememberHall records a hall layout as the most recent one.
func RememberHall(rows int, seatsPerRow int) error {
	if rows < 1 || seatsPerRow < 1 {
		return errors.New("rows and seats per row must be at least 1")
	}

	history, _ := LoadRecentHalls()
	next := []RecentHall{{Rows: rows, SeatsPerRow: seatsPerRow}}

	for _, existing := range history {
		if existing.Rows == rows && existing.SeatsPerRow == seatsPerRow {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentHalls {
			break
		}
	}

	return saveRecentHalls(next)
}

func saveRecentHalls(halls []RecentHall) error {
	path, err := configPath("history.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(hallHistory{Halls: halls}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cinema-hall-cli", name), nil
}

package store

import "testing"

func setTestConfigDir(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
}

func TestRememberHall_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	halls, err := LoadRecentHalls()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(halls) != 0 {
		t.Fatalf("expected no recent halls, got %+v", halls)
	}

	if err := RememberHall(9, 8); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := RememberHall(5, 5); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	halls, err = LoadRecentHalls()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(halls) != 2 {
		t.Fatalf("expected 2 recent halls, got %+v", halls)
	}
	if halls[0] != (RecentHall{Rows: 5, SeatsPerRow: 5}) {
		t.Fatalf("expected newest hall first, got %+v", halls[0])
	}
	if halls[1] != (RecentHall{Rows: 9, SeatsPerRow: 8}) {
		t.Fatalf("expected 9x8 hall second, got %+v", halls[1])
	}
}

func TestRememberHall_DeduplicatesAndPromotes(t *testing.T) {
	setTestConfigDir(t)

	if err := RememberHall(9, 8); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := RememberHall(5, 5); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := RememberHall(9, 8); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	halls, err := LoadRecentHalls()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(halls) != 2 {
		t.Fatalf("expected 2 recent halls, got %+v", halls)
	}
	if halls[0] != (RecentHall{Rows: 9, SeatsPerRow: 8}) {
		t.Fatalf("expected re-used hall promoted to front, got %+v", halls[0])
	}
}

func TestRememberHall_CapsHistory(t *testing.T) {
	setTestConfigDir(t)

	for rows := 1; rows <= 12; rows++ {
		if err := RememberHall(rows, 4); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}

	halls, err := LoadRecentHalls()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(halls) != maxRecentHalls {
		t.Fatalf("expected history capped at %d, got %d", maxRecentHalls, len(halls))
	}
	if halls[0] != (RecentHall{Rows: 12, SeatsPerRow: 4}) {
		t.Fatalf("expected newest hall first, got %+v", halls[0])
	}
}

func TestRememberHall_InvalidInput(t *testing.T) {
	setTestConfigDir(t)

	if err := RememberHall(0, 8); err == nil {
		t.Fatal("expected error for zero rows")
	}
	if err := RememberHall(9, -1); err == nil {
		t.Fatal("expected error for negative seats per row")
	}
}

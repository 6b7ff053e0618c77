package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func setTestConfigDir(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
}

func newSetupModel(t *testing.T, rows string, seats string) *appModel {
	t.Helper()
	setTestConfigDir(t)
	model := New().(appModel)
	model.rowsInput.SetValue(rows)
	model.seatsInput.SetValue(seats)
	return &model
}

func newHallModel(t *testing.T, rows string, seats string) *appModel {
	t.Helper()
	model := newSetupModel(t, rows, seats)
	model.submitSetup()
	if model.hall == nil {
		t.Fatalf("expected hall to be built, got setup error %q", model.setupErr)
	}
	return model
}

func TestSubmitSetup_BuildsHall(t *testing.T) {
	m := newSetupModel(t, "9", "8")

	m.submitSetup()

	if m.state != stateMenu {
		t.Fatalf("expected menu state, got %d", m.state)
	}
	if m.hall == nil {
		t.Fatal("expected hall to be built")
	}
	if m.hall.Rows() != 9 || m.hall.SeatsPerRow() != 8 {
		t.Fatalf("expected 9x8 hall, got %dx%d", m.hall.Rows(), m.hall.SeatsPerRow())
	}
	if m.setupErr != "" {
		t.Fatalf("expected no setup error, got %q", m.setupErr)
	}
}

func TestSubmitSetup_RejectsNonPositiveInput(t *testing.T) {
	for _, c := range [][2]string{{"0", "8"}, {"9", "0"}, {"-2", "4"}, {"", "4"}, {"abc", "4"}} {
		m := newSetupModel(t, c[0], c[1])

		m.submitSetup()

		if m.hall != nil {
			t.Fatalf("expected no hall for rows=%q seats=%q", c[0], c[1])
		}
		if m.state != stateSetup {
			t.Fatalf("expected to stay in setup for rows=%q seats=%q", c[0], c[1])
		}
		if m.setupErr == "" {
			t.Fatalf("expected setup error for rows=%q seats=%q", c[0], c[1])
		}
	}
}

func TestSubmitBuy_PurchaseFlow(t *testing.T) {
	m := newHallModel(t, "9", "8")

	m.rowInput.SetValue("1")
	m.seatInput.SetValue("1")
	m.submitBuy()
	if m.buyNotice != "Ticket price: $10" {
		t.Fatalf("expected ticket price notice, got %q", m.buyNotice)
	}
	if m.buyFailed {
		t.Fatal("expected successful purchase")
	}

	m.rowInput.SetValue("1")
	m.seatInput.SetValue("1")
	m.submitBuy()
	if m.buyNotice != "That ticket has already been purchased!" {
		t.Fatalf("expected already-purchased notice, got %q", m.buyNotice)
	}
	if !m.buyFailed {
		t.Fatal("expected failed purchase")
	}

	if stats := m.hall.Statistics(); stats.TicketsSold != 1 {
		t.Fatalf("expected 1 ticket sold, got %d", stats.TicketsSold)
	}
}

func TestSubmitBuy_OutOfRange(t *testing.T) {
	m := newHallModel(t, "9", "8")

	m.rowInput.SetValue("10")
	m.seatInput.SetValue("1")
	m.submitBuy()
	if m.buyNotice != "Wrong input!" {
		t.Fatalf("expected wrong-input notice, got %q", m.buyNotice)
	}
	if stats := m.hall.Statistics(); stats.TicketsSold != 0 {
		t.Fatalf("expected no tickets sold, got %d", stats.TicketsSold)
	}
}

func TestSubmitBuy_BackRowPrice(t *testing.T) {
	m := newHallModel(t, "9", "8")

	m.rowInput.SetValue("9")
	m.seatInput.SetValue("8")
	m.submitBuy()
	if m.buyNotice != "Ticket price: $8" {
		t.Fatalf("expected back row price notice, got %q", m.buyNotice)
	}
}

func TestMenuShortcuts_Dispatch(t *testing.T) {
	m := newHallModel(t, "5", "5")

	next, _, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	if !handled {
		t.Fatal("expected shortcut to be handled")
	}
	if got := next.(appModel).state; got != stateBuy {
		t.Fatalf("expected buy state, got %d", got)
	}

	next, _, handled = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if !handled {
		t.Fatal("expected shortcut to be handled")
	}
	if got := next.(appModel).state; got != stateStats {
		t.Fatalf("expected stats state, got %d", got)
	}
}

func TestGoBack_ReturnsToMenu(t *testing.T) {
	m := newHallModel(t, "5", "5")
	m.state = stateSeats

	next, _, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if !handled {
		t.Fatal("expected esc to be handled")
	}
	if got := next.(appModel).state; got != stateMenu {
		t.Fatalf("expected menu state, got %d", got)
	}
}

func TestRenderSeats_Markers(t *testing.T) {
	m := newHallModel(t, "3", "4")

	out := m.renderSeats()
	if !strings.Contains(out, "SCREEN") {
		t.Fatalf("expected screen bar, got:\n%s", out)
	}
	if !strings.Contains(out, "S S S S") {
		t.Fatalf("expected available markers, got:\n%s", out)
	}
	if strings.Contains(out, "S B") || strings.Contains(out, "B S") {
		t.Fatalf("expected no booked markers on a fresh hall, got:\n%s", out)
	}
	if !strings.Contains(out, "Available: 12") {
		t.Fatalf("expected counters line, got:\n%s", out)
	}

	if _, err := m.hall.Purchase(2, 3); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	out = m.renderSeats()
	if !strings.Contains(out, "S S B S") {
		t.Fatalf("expected booked marker after purchase, got:\n%s", out)
	}
	if !strings.Contains(out, "Booked: 1") {
		t.Fatalf("expected counters line after purchase, got:\n%s", out)
	}
}

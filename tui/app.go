package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinema-hall-cli/engine"
	"cinema-hall-cli/model"
	"cinema-hall-cli/store"
)

type appState int

const (
	stateSetup appState = iota
	stateMenu
	stateSeats
	stateBuy
	stateStats
)

type menuAction int

const (
	actionShowSeats menuAction = iota
	actionBuyTicket
	actionStatistics
	actionExit
)

type appModel struct {
	state appState

	width  int
	height int

	hall *engine.Hall

	rowsInput  textinput.Model
	seatsInput textinput.Model
	setupFocus int
	setupErr   string
	recent     []store.RecentHall
	recentIdx  int

	menuList list.Model

	rowInput  textinput.Model
	seatInput textinput.Model
	buyFocus  int
	buyNotice string
	buyFailed bool

	showSeatNumbers bool
}

func New() tea.Model {
	m := appModel{state: stateSetup, recentIdx: -1}

	m.rowsInput = newNumberInput("rows")
	m.seatsInput = newNumberInput("seats per row")
	m.rowsInput.Focus()

	m.rowInput = newNumberInput("row number")
	m.seatInput = newNumberInput("seat number")

	m.menuList = newMenu()
	m.recent, _ = store.LoadRecentHalls()

	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := m.height - 6
		if h < 6 {
			h = 6
		}
		m.menuList.SetSize(m.width, h)
		return m, nil

	case tea.KeyMsg:
		model, cmd, handled := m.handleKey(msg)
		if handled {
			return model, cmd
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSetup:
		if m.setupFocus == 0 {
			m.rowsInput, cmd = m.rowsInput.Update(msg)
		} else {
			m.seatsInput, cmd = m.seatsInput.Update(msg)
		}
	case stateMenu:
		m.menuList, cmd = m.menuList.Update(msg)
	case stateBuy:
		if m.buyFocus == 0 {
			m.rowInput, cmd = m.rowInput.Update(msg)
		} else {
			m.seatInput, cmd = m.seatInput.Update(msg)
		}
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "q":
		if m.state == stateMenu || m.state == stateSeats || m.state == stateStats {
			return m, tea.Quit, true
		}
	case "esc":
		return m.goBack()
	case "n":
		if m.state == stateSeats {
			m.showSeatNumbers = !m.showSeatNumbers
			return m, nil, true
		}
	case "ctrl+r":
		if m.state == stateSetup && len(m.recent) > 0 {
			m.recentIdx = (m.recentIdx + 1) % len(m.recent)
			recent := m.recent[m.recentIdx]
			m.rowsInput.SetValue(strconv.Itoa(recent.Rows))
			m.seatsInput.SetValue(strconv.Itoa(recent.SeatsPerRow))
			m.setupErr = ""
			return m, nil, true
		}
	case "tab", "shift+tab", "up", "down":
		switch m.state {
		case stateSetup:
			m.setSetupFocus(1 - m.setupFocus)
			return m, nil, true
		case stateBuy:
			m.setBuyFocus(1 - m.buyFocus)
			return m, nil, true
		}
	case "1", "2", "3", "0":
		if m.state == stateMenu {
			switch msg.String() {
			case "1":
				return m.dispatch(actionShowSeats)
			case "2":
				return m.dispatch(actionBuyTicket)
			case "3":
				return m.dispatch(actionStatistics)
			case "0":
				return m.dispatch(actionExit)
			}
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSetup:
			if m.setupFocus == 0 {
				m.setSetupFocus(1)
				return m, nil, true
			}
			m.submitSetup()
			return m, nil, true
		case stateMenu:
			item, ok := m.menuList.SelectedItem().(menuItem)
			if !ok {
				return m, nil, true
			}
			return m.dispatch(item.action)
		case stateBuy:
			if m.buyFocus == 0 {
				m.setBuyFocus(1)
				return m, nil, true
			}
			m.submitBuy()
			return m, nil, true
		case stateSeats, stateStats:
			m.state = stateMenu
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) dispatch(action menuAction) (tea.Model, tea.Cmd, bool) {
	switch action {
	case actionShowSeats:
		m.state = stateSeats
	case actionBuyTicket:
		m.resetBuyForm()
		m.state = stateBuy
	case actionStatistics:
		m.state = stateStats
	case actionExit:
		return m, tea.Quit, true
	}
	return m, nil, true
}

func (m appModel) goBack() (tea.Model, tea.Cmd, bool) {
	switch m.state {
	case stateSeats, stateBuy, stateStats:
		m.state = stateMenu
		return m, nil, true
	}
	return m, nil, true
}

func (m *appModel) setSetupFocus(focus int) {
	m.setupFocus = focus
	if focus == 0 {
		m.rowsInput.Focus()
		m.seatsInput.Blur()
	} else {
		m.rowsInput.Blur()
		m.seatsInput.Focus()
	}
}

func (m *appModel) setBuyFocus(focus int) {
	m.buyFocus = focus
	if focus == 0 {
		m.rowInput.Focus()
		m.seatInput.Blur()
	} else {
		m.rowInput.Blur()
		m.seatInput.Focus()
	}
}

func (m *appModel) resetBuyForm() {
	m.rowInput.SetValue("")
	m.seatInput.SetValue("")
	m.buyNotice = ""
	m.buyFailed = false
	m.setBuyFocus(0)
}

func (m *appModel) submitSetup() {
	rows, rowsErr := parsePositiveInt(m.rowsInput.Value())
	seats, seatsErr := parsePositiveInt(m.seatsInput.Value())
	if rowsErr != nil || seatsErr != nil {
		m.setupErr = "Rows and seats per row must be positive numbers"
		return
	}

	hall, err := engine.NewHall(rows, seats)
	if err != nil {
		m.setupErr = err.Error()
		return
	}

	m.hall = hall
	m.setupErr = ""
	_ = store.RememberHall(rows, seats)
	m.state = stateMenu
}

func (m *appModel) submitBuy() {
	row, rowErr := parsePositiveInt(m.rowInput.Value())
	seat, seatErr := parsePositiveInt(m.seatInput.Value())
	if rowErr != nil || seatErr != nil {
		m.buyNotice = "Wrong input!"
		m.buyFailed = true
		return
	}

	price, err := m.hall.Purchase(row, seat)
	switch {
	case engine.IsAlreadyBooked(err):
		m.buyNotice = "That ticket has already been purchased!"
		m.buyFailed = true
	case engine.IsOutOfRange(err):
		m.buyNotice = "Wrong input!"
		m.buyFailed = true
	default:
		m.buyNotice = fmt.Sprintf("Ticket price: $%d", price)
		m.buyFailed = false
		m.rowInput.SetValue("")
		m.seatInput.SetValue("")
		m.setBuyFocus(0)
	}
}

func parsePositiveInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateSetup:
		return header + "\n\n" + m.setupView()
	case stateMenu:
		return header + "\n\n" + m.menuList.View()
	case stateSeats:
		return header + "\n\n" + m.renderSeats()
	case stateBuy:
		return header + "\n\n" + m.buyView()
	case stateStats:
		return header + "\n\n" + m.statsView()
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Cinema Hall Manager")

	sub := []string{}
	if m.hall != nil {
		sub = append(sub, fmt.Sprintf("Hall: %dx%d", m.hall.Rows(), m.hall.SeatsPerRow()))
		report := m.hall.Statistics()
		sub = append(sub, fmt.Sprintf("Sold: %d/%d", report.TicketsSold, m.hall.TotalSeats()))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit"
	switch m.state {
	case stateSetup:
		hints = "ctrl+c quit • tab switch field • enter confirm"
		if len(m.recent) > 0 {
			hints += " • ctrl+r recent layout"
		}
	case stateMenu:
		hints = "q quit • enter select • 1/2/3/0 shortcuts"
	case stateSeats:
		hints = "q quit • esc back • n toggle numbers"
	case stateBuy:
		hints = "ctrl+c quit • esc back • tab switch field • enter confirm"
	case stateStats:
		hints = "q quit • esc back"
	}

	return title + meta + "\n" + hint(hints)
}

func (m appModel) setupView() string {
	var b strings.Builder
	b.WriteString("Enter the number of rows:\n")
	b.WriteString(m.rowsInput.View())
	b.WriteString("\n\nEnter the number of seats in each row:\n")
	b.WriteString(m.seatsInput.View())
	b.WriteString("\n")

	if len(m.recent) > 0 {
		labels := make([]string, 0, len(m.recent))
		for _, recent := range m.recent {
			labels = append(labels, fmt.Sprintf("%dx%d", recent.Rows, recent.SeatsPerRow))
		}
		b.WriteString("\n")
		b.WriteString(hint("Recent layouts: " + strings.Join(labels, ", ")))
		b.WriteString("\n")
	}

	if m.setupErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.setupErr))
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) buyView() string {
	var b strings.Builder
	b.WriteString("Enter a row number:\n")
	b.WriteString(m.rowInput.View())
	b.WriteString("\n\nEnter a seat number in that row:\n")
	b.WriteString(m.seatInput.View())
	b.WriteString("\n")

	if m.buyNotice != "" {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
		if m.buyFailed {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.buyNotice))
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) statsView() string {
	report := m.hall.Statistics()
	content := strings.Join([]string{
		fmt.Sprintf("Number of purchased tickets: %d", report.TicketsSold),
		fmt.Sprintf("Percentage: %.2f%%", report.OccupancyPercent),
		fmt.Sprintf("Current income: $%d", report.CurrentRevenue),
		fmt.Sprintf("Total income: $%d", report.MaxRevenue),
	}, "\n")

	panel := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(content)
	return panel + "\n"
}

func (m appModel) renderSeats() string {
	layout := m.hall.Layout()
	rows := m.hall.Rows()
	seats := m.hall.SeatsPerRow()

	tiered := m.hall.TotalSeats() > 60
	frontRows := rows / 2

	rowWidth := len(strconv.Itoa(rows))
	if rowWidth < 2 {
		rowWidth = 2
	}
	cellWidth := 1
	if m.showSeatNumbers {
		cellWidth = len(strconv.Itoa(seats))
	}

	seatStyleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleFront := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	seatStyleBooked := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	var b strings.Builder

	gridWidth := seats*(cellWidth+1) - 1
	screenBar := screenBarBlock(gridWidth, "SCREEN")
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236"))

	margin := strings.Repeat(" ", rowWidth+1)
	b.WriteString(margin + screenBorderStyle.Render(screenBar.top) + "\n")
	b.WriteString(margin + screenStyle.Render(screenBar.mid) + "\n")
	b.WriteString(margin + screenBorderStyle.Render(screenBar.bot) + "\n\n")

	b.WriteString(margin)
	for seat := 1; seat <= seats; seat++ {
		b.WriteString(padCell(strconv.Itoa(seat), cellWidth))
		if seat < seats {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	for i, row := range layout {
		label := strconv.Itoa(i + 1)
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for j, status := range row {
			text := "S"
			if status == model.SeatBooked {
				text = "B"
			}
			if m.showSeatNumbers {
				text = strconv.Itoa(j + 1)
			}
			rendered := padCell(text, cellWidth)
			switch {
			case status == model.SeatBooked:
				rendered = seatStyleBooked.Render(rendered)
			case tiered && i < frontRows:
				rendered = seatStyleFront.Render(rendered)
			default:
				rendered = seatStyleAvailable.Render(rendered)
			}
			b.WriteString(rendered)
			if j < len(row)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, label))
	}

	legend := "Legend: S available • B booked"
	if m.showSeatNumbers {
		legend = "Legend: color shows status • numbers are seat labels"
	}
	if tiered {
		legend += fmt.Sprintf(" • front %d rows $10, back rows $8", frontRows)
	}

	report := m.hall.Statistics()
	counts := fmt.Sprintf(
		"Available: %d • Booked: %d • Total: %d • %.2f%% sold",
		m.hall.TotalSeats()-report.TicketsSold,
		report.TicketsSold,
		m.hall.TotalSeats(),
		report.OccupancyPercent,
	)

	return b.String() + "\n" + hint(legend) + "\n" + hint(counts)
}

type menuItem struct {
	action menuAction
	title  string
	desc   string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return strings.ToLower(i.title) }

func newMenu() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{
		menuItem{action: actionShowSeats, title: "1. Show the seats", desc: "Render the hall layout"},
		menuItem{action: actionBuyTicket, title: "2. Buy a ticket", desc: "Book one seat by row and seat number"},
		menuItem{action: actionStatistics, title: "3. Statistics", desc: "Tickets sold, occupancy and income"},
		menuItem{action: actionExit, title: "0. Exit", desc: "Quit the program"},
	}, delegate, 0, 0)
	l.Title = "Menu"
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func newNumberInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 4
	input.Width = 12
	input.Prompt = "> "
	return input
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}

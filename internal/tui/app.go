// Package tui is the single-page workshop console: one bubbletea
// model owning the session store, with a view per tab and modal forms
// for every add/edit. All store mutations run inside Update, so the
// store keeps exactly one writer.
package tui

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avtomaster/workshop/internal/config"
	"github.com/avtomaster/workshop/internal/prefs"
	"github.com/avtomaster/workshop/internal/service"
	"github.com/avtomaster/workshop/internal/store"
)

// App ties together views.
type App struct {
	store  *store.Store
	search *service.ClientSearch
	ledger *service.LedgerCSV
	cfg    config.Config
	tz     *time.Location

	state view
	modal modalState

	form    *form
	confirm *confirmPrompt

	// repairs
	repairCursor   int
	partCursor     int
	repairDetailID string // non-empty means the parts checklist is open
	statusJobID    string
	statusCursor   int

	// finance
	finSection    finSection
	incomeCursor  int
	expenseCursor int
	pathInput     string // import/export path prompt

	// clients
	clientCursor int
	searching    bool
	searchQuery  string

	// vehicles
	vehicleCursor   int
	vehicleDetailID string

	// calendar
	selectedDate time.Time
	apptCursor   int

	status   string
	currency string
	dateFmt  string
}

type view string

const (
	viewRepairs   view = "repairs"
	viewDashboard view = "dashboard"
	viewFinance   view = "finance"
	viewClients   view = "clients"
	viewVehicles  view = "vehicles"
	viewCalendar  view = "calendar"
	viewSettings  view = "settings"
)

type modalState string

const (
	modalNone         modalState = ""
	modalForm         modalState = "form"
	modalConfirm      modalState = "confirm"
	modalStatusPicker modalState = "statusPicker"
	modalImportPath   modalState = "importPath"
	modalExportPath   modalState = "exportPath"
)

type finSection int

const (
	sectionIncome finSection = iota
	sectionExpense
)

// New builds the console over an already-seeded store. The last
// active tab is restored from prefs when it still exists.
func New(cfg config.Config, st *store.Store, search *service.ClientSearch, ledger *service.LedgerCSV, tz *time.Location) *App {
	if tz == nil {
		tz = time.Local
	}
	a := &App{
		store:        st,
		search:       search,
		ledger:       ledger,
		cfg:          cfg,
		tz:           tz,
		state:        viewRepairs,
		selectedDate: dateOnly(time.Now().In(tz)),
		currency:     cfg.UI.CurrencySymbol,
		dateFmt:      cfg.UI.DateFormat,
	}
	if p, err := prefs.Load(); err == nil && p.ActiveTab != "" {
		if v := view(p.ActiveTab); knownView(v) {
			a.state = v
		}
	}
	return a
}

func knownView(v view) bool {
	switch v {
	case viewRepairs, viewDashboard, viewFinance, viewClients, viewVehicles, viewCalendar, viewSettings:
		return true
	}
	return false
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(m)
	case csvLoadedMsg:
		res, err := a.ledger.Import(bytes.NewReader(m.data))
		if err != nil {
			a.status = "error: " + err.Error()
			return a, nil
		}
		a.status = fmt.Sprintf("imported %d, skipped %d", res.Imported, res.Skipped)
		if len(res.Errors) > 0 {
			a.status += fmt.Sprintf(", errors %d (first: %v)", len(res.Errors), res.Errors[0])
		}
	case fileWrittenMsg:
		a.status = "exported to " + m.path
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal != modalNone {
		return a.handleModalKey(m)
	}
	if a.state == viewClients && a.searching {
		return a.handleSearchKey(m)
	}

	switch m.String() {
	case "q", "ctrl+c":
		return a.quit()
	}

	// per-view actions first; view switching falls through below
	if model, cmd, handled := a.handleViewKey(m); handled {
		return model, cmd
	}

	switch m.String() {
	case "r":
		a.switchView(viewRepairs)
	case "d":
		a.switchView(viewDashboard)
	case "f":
		a.switchView(viewFinance)
	case "c":
		a.switchView(viewClients)
	case "v":
		a.switchView(viewVehicles)
	case "m":
		a.switchView(viewCalendar)
	case "p":
		a.switchView(viewSettings)
	}
	return a, nil
}

func (a *App) switchView(v view) {
	a.state = v
	a.status = ""
	a.repairDetailID = ""
	a.vehicleDetailID = ""
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	_ = prefs.Save(prefs.Prefs{ActiveTab: string(a.state)})
	return a, tea.Quit
}

// handleViewKey dispatches keys that act on the current view's data.
func (a *App) handleViewKey(m tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch a.state {
	case viewRepairs:
		return a.handleRepairsKey(m)
	case viewFinance:
		return a.handleFinanceKey(m)
	case viewClients:
		return a.handleClientsKey(m)
	case viewVehicles:
		return a.handleVehiclesKey(m)
	case viewCalendar:
		return a.handleCalendarKey(m)
	case viewSettings:
		return a.handleSettingsKey(m)
	}
	return a, nil, false
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalForm:
		status, done, err := a.form.handleKey(m)
		if err != nil {
			a.status = "error: " + err.Error()
			return a, nil
		}
		if done {
			a.modal = modalNone
			a.form = nil
			if status != "" {
				a.status = status
			}
		}
	case modalConfirm:
		switch m.String() {
		case "y", "Y":
			a.status = a.confirm.do()
			a.modal = modalNone
			a.confirm = nil
		case "n", "N", "esc":
			a.modal = modalNone
			a.confirm = nil
		}
	case modalStatusPicker:
		statuses := []store.RepairStatus{store.StatusWaiting, store.StatusInProgress, store.StatusCompleted}
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.statusCursor > 0 {
				a.statusCursor--
			}
		case "down", "j":
			if a.statusCursor < len(statuses)-1 {
				a.statusCursor++
			}
		case "enter":
			a.modal = modalNone
			if err := a.store.SetRepairStatus(a.statusJobID, statuses[a.statusCursor]); err != nil {
				a.status = "error: " + err.Error()
			} else {
				a.status = "status updated"
			}
		}
	case modalImportPath, modalExportPath:
		return a.handlePathKey(m)
	}
	return a, nil
}

func (a *App) handlePathKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.modal = modalNone
	case tea.KeyEnter:
		path := strings.TrimSpace(a.pathInput)
		if path == "" {
			a.status = "enter a file path"
			return a, nil
		}
		mode := a.modal
		a.modal = modalNone
		if mode == modalImportPath {
			a.status = "importing..."
			return a, readFileCmd(path)
		}
		var buf bytes.Buffer
		if err := a.ledger.Export(&buf); err != nil {
			a.status = "error: " + err.Error()
			return a, nil
		}
		a.status = "exporting..."
		return a, writeFileCmd(path, buf.Bytes())
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.pathInput) > 0 {
			a.pathInput = trimLastRune(a.pathInput)
		}
	case tea.KeySpace:
		a.pathInput += " "
	case tea.KeyRunes:
		a.pathInput += string(m.Runes)
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.searching = false
		a.searchQuery = ""
	case tea.KeyEnter:
		a.searching = false
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.searchQuery) > 0 {
			a.searchQuery = trimLastRune(a.searchQuery)
		}
	case tea.KeySpace:
		a.searchQuery += " "
	case tea.KeyRunes:
		a.searchQuery += string(m.Runes)
	}
	a.clientCursor = 0
	return a, nil
}

func (a *App) openConfirm(prompt string, do func() string) {
	a.modal = modalConfirm
	a.confirm = &confirmPrompt{prompt: prompt, do: do}
}

func (a *App) openForm(f *form) {
	a.modal = modalForm
	a.form = f
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewDashboard:
		body = a.renderDashboard()
	case viewFinance:
		body = a.renderFinance()
	case viewClients:
		body = a.renderClients()
	case viewVehicles:
		body = a.renderVehicles()
	case viewCalendar:
		body = a.renderCalendar()
	case viewSettings:
		body = a.renderSettings()
	default:
		body = a.renderRepairs()
	}
	switch a.modal {
	case modalForm:
		body += "\n\n" + a.form.render()
	case modalConfirm:
		body += "\n\n" + a.confirm.render()
	case modalStatusPicker:
		body += "\n\n" + a.renderStatusPicker()
	case modalImportPath:
		body += "\n\n" + titleStyle.Render("Import ledger CSV") + fmt.Sprintf("\nPath: %s\n[enter] Import  [esc] Cancel", a.pathInput)
	case modalExportPath:
		body += "\n\n" + titleStyle.Render("Export ledger CSV") + fmt.Sprintf("\nPath: %s\n[enter] Export  [esc] Cancel", a.pathInput)
	}
	if a.status != "" {
		body += "\n" + a.status
	}
	return body
}

// messages
type csvLoadedMsg struct {
	path string
	data []byte
}

type fileWrittenMsg struct{ path string }

type errMsg struct{ error }

// commands: only file IO leaves the event loop; the parsed result is
// applied back on it.
func readFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return errMsg{fmt.Errorf("open %s: %w", path, err)}
		}
		return csvLoadedMsg{path: path, data: data}
	}
}

func writeFileCmd(path string, data []byte) tea.Cmd {
	return func() tea.Msg {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errMsg{fmt.Errorf("write %s: %w", path, err)}
		}
		return fileWrittenMsg{path: path}
	}
}

// styles
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	waitingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	progressStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avtomaster/workshop/internal/config"
	"github.com/avtomaster/workshop/internal/store"
)

func (a *App) handleRepairsKey(m tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if a.repairDetailID != "" {
		return a.handleRepairDetailKey(m)
	}
	jobs := a.store.RepairJobs()
	switch m.String() {
	case "up", "k":
		if a.repairCursor > 0 {
			a.repairCursor--
		}
	case "down", "j":
		if a.repairCursor < len(jobs)-1 {
			a.repairCursor++
		}
	case "a":
		a.openForm(a.repairJobForm())
	case "s":
		if len(jobs) > 0 {
			a.statusJobID = jobs[a.repairCursor].ID
			a.statusCursor = 0
			a.modal = modalStatusPicker
		}
	case "enter":
		if len(jobs) > 0 {
			a.repairDetailID = jobs[a.repairCursor].ID
			a.partCursor = 0
		}
	case "backspace", "delete":
		if len(jobs) > 0 {
			job := jobs[a.repairCursor]
			a.openConfirm(fmt.Sprintf("Delete repair job %s %s?", job.CarBrand, job.CarModel), func() string {
				a.store.DeleteRepairJob(job.ID)
				a.clampRepairCursor()
				return "repair job deleted"
			})
		}
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) handleRepairDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	job := a.store.RepairJobByID(a.repairDetailID)
	if job == nil {
		a.repairDetailID = ""
		return a, nil, true
	}
	switch m.String() {
	case "esc":
		a.repairDetailID = ""
	case "up", "k":
		if a.partCursor > 0 {
			a.partCursor--
		}
	case "down", "j":
		if a.partCursor < len(job.Parts)-1 {
			a.partCursor++
		}
	case "a":
		a.openForm(a.repairPartForm(job.ID))
	case "s":
		a.statusJobID = job.ID
		a.statusCursor = 0
		a.modal = modalStatusPicker
	case " ", "enter":
		if len(job.Parts) > 0 {
			part := job.Parts[a.partCursor]
			if err := a.store.TogglePartPurchased(job.ID, part.ID); err != nil {
				a.status = "error: " + err.Error()
			}
		}
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) handleFinanceKey(m tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch m.String() {
	case "tab":
		if a.finSection == sectionIncome {
			a.finSection = sectionExpense
		} else {
			a.finSection = sectionIncome
		}
	case "up", "k":
		a.moveFinanceCursor(-1)
	case "down", "j":
		a.moveFinanceCursor(1)
	case "a":
		if a.finSection == sectionIncome {
			a.openForm(a.incomeForm(nil))
		} else {
			a.openForm(a.expenseForm(nil))
		}
	case "e", "enter":
		if a.finSection == sectionIncome {
			if e := a.selectedIncome(); e != nil {
				a.openForm(a.incomeForm(e))
			}
		} else {
			if e := a.selectedExpense(); e != nil {
				a.openForm(a.expenseForm(e))
			}
		}
	case "backspace", "delete":
		if a.finSection == sectionIncome {
			if e := a.selectedIncome(); e != nil {
				a.openConfirm("Delete income \""+e.Source+"\"?", func() string {
					a.store.DeleteIncome(e.ID)
					a.clampFinanceCursors()
					return "income deleted"
				})
			}
		} else {
			if e := a.selectedExpense(); e != nil {
				a.openConfirm("Delete expense \""+string(e.Category)+"\"?", func() string {
					a.store.DeleteExpense(e.ID)
					a.clampFinanceCursors()
					return "expense deleted"
				})
			}
		}
	case "i":
		a.modal = modalImportPath
		a.pathInput = "ledger.csv"
	case "o":
		a.modal = modalExportPath
		a.pathInput = "ledger.csv"
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) handleClientsKey(m tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	visible := a.visibleClients()
	switch m.String() {
	case "/":
		a.searching = true
		a.searchQuery = ""
		a.clientCursor = 0
	case "up", "k":
		if a.clientCursor > 0 {
			a.clientCursor--
		}
	case "down", "j":
		if a.clientCursor < len(visible)-1 {
			a.clientCursor++
		}
	case "a":
		a.openForm(a.clientForm())
	case "backspace", "delete":
		if len(visible) > 0 {
			cl := visible[a.clientCursor]
			a.openConfirm("Delete client "+cl.Name+"?", func() string {
				a.store.DeleteClient(cl.ID)
				if a.clientCursor >= len(a.visibleClients()) && a.clientCursor > 0 {
					a.clientCursor--
				}
				return "client deleted"
			})
		}
	case "esc":
		if a.searchQuery != "" {
			a.searchQuery = ""
			a.clientCursor = 0
		}
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) handleVehiclesKey(m tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if a.vehicleDetailID != "" {
		return a.handleVehicleDetailKey(m)
	}
	vehicles := a.store.Vehicles()
	switch m.String() {
	case "up", "k":
		if a.vehicleCursor > 0 {
			a.vehicleCursor--
		}
	case "down", "j":
		if a.vehicleCursor < len(vehicles)-1 {
			a.vehicleCursor++
		}
	case "a":
		a.openForm(a.vehicleForm())
	case "enter":
		if len(vehicles) > 0 {
			a.vehicleDetailID = vehicles[a.vehicleCursor].ID
		}
	case "backspace", "delete":
		if len(vehicles) > 0 {
			v := vehicles[a.vehicleCursor]
			a.openConfirm("Delete vehicle "+v.Name+" and its expenses?", func() string {
				a.store.DeleteVehicle(v.ID)
				a.clampVehicleCursor()
				return "vehicle deleted"
			})
		}
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) handleVehicleDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	v := a.store.VehicleByID(a.vehicleDetailID)
	if v == nil {
		a.vehicleDetailID = ""
		return a, nil, true
	}
	switch m.String() {
	case "esc":
		a.vehicleDetailID = ""
	case "a":
		a.openForm(a.vehicleExpenseForm(v.ID))
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) handleCalendarKey(m tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	appts := a.appointmentsOnSelected()
	switch m.String() {
	case "left", "h":
		a.selectedDate = a.selectedDate.AddDate(0, 0, -1)
		a.apptCursor = 0
	case "right", "l":
		a.selectedDate = a.selectedDate.AddDate(0, 0, 1)
		a.apptCursor = 0
	case "t":
		a.selectedDate = dateOnly(time.Now().In(a.tz))
		a.apptCursor = 0
	case "up", "k":
		if a.apptCursor > 0 {
			a.apptCursor--
		}
	case "down", "j":
		if a.apptCursor < len(appts)-1 {
			a.apptCursor++
		}
	case "a":
		a.openForm(a.appointmentForm())
	case "backspace", "delete":
		if len(appts) > 0 {
			appt := appts[a.apptCursor]
			a.openConfirm("Delete appointment for "+appt.ClientName+"?", func() string {
				a.store.DeleteAppointment(appt.ID)
				if a.apptCursor > 0 {
					a.apptCursor--
				}
				return "appointment deleted"
			})
		}
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) handleSettingsKey(m tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch m.String() {
	case "e":
		a.openForm(a.currencyForm())
	case "x":
		a.openConfirm("Reset session? This clears every record.", func() string {
			a.store.Reset()
			a.repairCursor, a.partCursor = 0, 0
			a.incomeCursor, a.expenseCursor = 0, 0
			a.clientCursor, a.vehicleCursor, a.apptCursor = 0, 0, 0
			a.repairDetailID, a.vehicleDetailID = "", ""
			return "session reset (empty)"
		})
	default:
		return a, nil, false
	}
	return a, nil, true
}

// forms

func (a *App) incomeForm(edit *store.Income) *form {
	f := &form{title: "Add income"}
	if edit == nil {
		f.fields = []formField{
			textField("Date"),
			textField("Source"),
			textField("Amount"),
			textField("Description"),
		}
	} else {
		f.title = "Edit income"
		f.fields = []formField{
			textFieldVal("Date", edit.Date.Format("2006-01-02")),
			textFieldVal("Source", edit.Source),
			textFieldVal("Amount", store.FormatAmount(edit.AmountCents)),
			textFieldVal("Description", edit.Description),
		}
	}
	f.submit = func(vals []string) (string, error) {
		fields := store.IncomeFields{Date: vals[0], Source: vals[1], Amount: vals[2], Description: vals[3]}
		if edit == nil {
			if _, err := a.store.AddIncome(fields); err != nil {
				return "", err
			}
			return "income added", nil
		}
		if _, err := a.store.UpdateIncome(edit.ID, fields); err != nil {
			return "", err
		}
		return "income updated", nil
	}
	return f
}

func (a *App) expenseForm(edit *store.Expense) *form {
	cats := make([]string, 0, len(store.ExpenseCategories()))
	for _, c := range store.ExpenseCategories() {
		cats = append(cats, string(c))
	}
	f := &form{title: "Add expense"}
	if edit == nil {
		f.fields = []formField{
			textField("Date"),
			selectField("Category", cats),
			textField("Amount"),
			textField("Description"),
		}
	} else {
		f.title = "Edit expense"
		cat := selectField("Category", cats)
		for i, c := range cats {
			if c == string(edit.Category) {
				cat.optIdx = i + 1
			}
		}
		f.fields = []formField{
			textFieldVal("Date", edit.Date.Format("2006-01-02")),
			cat,
			textFieldVal("Amount", store.FormatAmount(edit.AmountCents)),
			textFieldVal("Description", edit.Description),
		}
	}
	f.submit = func(vals []string) (string, error) {
		fields := store.ExpenseFields{Date: vals[0], Category: vals[1], Amount: vals[2], Description: vals[3]}
		if edit == nil {
			if _, err := a.store.AddExpense(fields); err != nil {
				return "", err
			}
			return "expense added", nil
		}
		if _, err := a.store.UpdateExpense(edit.ID, fields); err != nil {
			return "", err
		}
		return "expense updated", nil
	}
	return f
}

func (a *App) clientForm() *form {
	return &form{
		title:  "Add client",
		fields: []formField{textField("Name"), textField("Phone"), textField("Car")},
		submit: func(vals []string) (string, error) {
			if _, err := a.store.AddClient(store.ClientFields{Name: vals[0], Phone: vals[1], Car: vals[2]}); err != nil {
				return "", err
			}
			return "client added", nil
		},
	}
}

func (a *App) vehicleForm() *form {
	return &form{
		title: "Add vehicle",
		fields: []formField{
			textField("Name"),
			textField("Year"),
			textField("VIN"),
			textField("Registration"),
			textField("Prev. owner"),
			textField("Price"),
		},
		submit: func(vals []string) (string, error) {
			_, err := a.store.AddVehicle(store.VehicleFields{
				Name: vals[0], Year: vals[1], VIN: vals[2],
				Registration: vals[3], PreviousOwner: vals[4], Price: vals[5],
			})
			if err != nil {
				return "", err
			}
			return "vehicle added", nil
		},
	}
}

func (a *App) vehicleExpenseForm(vehicleID string) *form {
	return &form{
		title:  "Add vehicle expense",
		fields: []formField{textField("Description"), textField("Amount"), textField("Date")},
		submit: func(vals []string) (string, error) {
			_, err := a.store.AddVehicleExpense(vehicleID, store.VehicleExpenseFields{
				Description: vals[0], Amount: vals[1], Date: vals[2],
			})
			if err != nil {
				return "", err
			}
			return "vehicle expense added", nil
		},
	}
}

func (a *App) repairJobForm() *form {
	return &form{
		title: "Add repair job",
		fields: []formField{
			textField("Car brand"),
			textField("Car model"),
			textField("Client name"),
			textField("Client phone"),
			textField("Notes"),
		},
		submit: func(vals []string) (string, error) {
			_, err := a.store.AddRepairJob(store.RepairJobFields{
				CarBrand: vals[0], CarModel: vals[1], ClientName: vals[2],
				ClientPhone: vals[3], Notes: vals[4],
			})
			if err != nil {
				return "", err
			}
			a.repairCursor = 0 // new jobs land on top
			return "repair job added", nil
		},
	}
}

func (a *App) repairPartForm(jobID string) *form {
	return &form{
		title:  "Add part",
		fields: []formField{textField("Name"), textFieldVal("Quantity", "1")},
		submit: func(vals []string) (string, error) {
			qty := 0
			if s := strings.TrimSpace(vals[1]); s != "" {
				n, err := strconv.Atoi(s)
				if err != nil {
					return "", fmt.Errorf("quantity %q is not a whole number: %w", s, store.ErrValidation)
				}
				qty = n
			}
			if _, err := a.store.AddRepairPart(jobID, vals[0], qty); err != nil {
				return "", err
			}
			return "part added", nil
		},
	}
}

func (a *App) appointmentForm() *form {
	date := a.selectedDate
	return &form{
		title: "Book appointment — " + date.Format(a.dateFmt),
		fields: []formField{
			textField("Client name"),
			textField("Car"),
			textField("Plate number"),
			textField("Phone"),
			textField("Time"),
		},
		submit: func(vals []string) (string, error) {
			_, err := a.store.AddAppointment(date, store.AppointmentFields{
				ClientName: vals[0], Car: vals[1], PlateNumber: vals[2],
				Phone: vals[3], Time: vals[4],
			})
			if err != nil {
				return "", err
			}
			return "appointment booked", nil
		},
	}
}

func (a *App) currencyForm() *form {
	return &form{
		title:  "Currency symbol",
		fields: []formField{textFieldVal("Symbol", a.currency)},
		submit: func(vals []string) (string, error) {
			sym := strings.TrimSpace(vals[0])
			if sym == "" {
				return "", fmt.Errorf("symbol required: %w", store.ErrValidation)
			}
			a.currency = sym
			a.cfg.UI.CurrencySymbol = sym
			if err := config.Save(a.cfg); err != nil {
				return "", err
			}
			return "currency saved to config", nil
		},
	}
}

// selection helpers

func (a *App) selectedIncome() *store.Income {
	list := a.store.Incomes()
	if len(list) == 0 || a.incomeCursor >= len(list) {
		return nil
	}
	e := list[a.incomeCursor]
	return &e
}

func (a *App) selectedExpense() *store.Expense {
	list := a.store.Expenses()
	if len(list) == 0 || a.expenseCursor >= len(list) {
		return nil
	}
	e := list[a.expenseCursor]
	return &e
}

func (a *App) moveFinanceCursor(delta int) {
	if a.finSection == sectionIncome {
		n := len(a.store.Incomes())
		a.incomeCursor = clamp(a.incomeCursor+delta, n)
	} else {
		n := len(a.store.Expenses())
		a.expenseCursor = clamp(a.expenseCursor+delta, n)
	}
}

func (a *App) clampFinanceCursors() {
	a.incomeCursor = clamp(a.incomeCursor, len(a.store.Incomes()))
	a.expenseCursor = clamp(a.expenseCursor, len(a.store.Expenses()))
}

func (a *App) clampRepairCursor() {
	a.repairCursor = clamp(a.repairCursor, len(a.store.RepairJobs()))
}

func (a *App) clampVehicleCursor() {
	a.vehicleCursor = clamp(a.vehicleCursor, len(a.store.Vehicles()))
}

func clamp(v, n int) int {
	if n == 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (a *App) visibleClients() []store.Client {
	matches := a.search.Find(a.searchQuery)
	out := make([]store.Client, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Client)
	}
	return out
}

func (a *App) appointmentsOnSelected() []store.Appointment {
	var out []store.Appointment
	for appt := range a.store.AppointmentsOn(a.selectedDate) {
		out = append(out, appt)
	}
	return out
}

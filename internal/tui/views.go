package tui

import (
	"fmt"
	"time"

	"github.com/avtomaster/workshop/internal/store"
)

func (a *App) money(cents int64) string {
	return a.currency + store.FormatAmount(cents)
}

func (a *App) fdate(t time.Time) string {
	return t.In(a.tz).Format(a.dateFmt)
}

func statusBadge(s store.RepairStatus) string {
	switch s {
	case store.StatusInProgress:
		return progressStyle.Render("in progress")
	case store.StatusCompleted:
		return completedStyle.Render("completed")
	default:
		return waitingStyle.Render("waiting")
	}
}

func cursorMarker(sel bool) string {
	if sel {
		return "▶"
	}
	return " "
}

func (a *App) footer(extra string) string {
	nav := "[r] Repairs  [d] Dashboard  [f] Finance  [c] Clients  [v] Vehicles  [m] Calendar  [p] Settings  [q] Quit"
	if extra != "" {
		return extra + "\n" + nav
	}
	return nav
}

func (a *App) renderRepairs() string {
	if a.repairDetailID != "" {
		return a.renderRepairDetail()
	}
	out := titleStyle.Render("Repair Queue") + "\n"
	jobs := a.store.RepairJobs()
	if len(jobs) == 0 {
		out += "No cars in the shop.\n"
	}
	for i, j := range jobs {
		bought, total := partsProgress(j)
		out += fmt.Sprintf("%s %s %-10s %-18s %-16s parts %d/%d  %s\n",
			cursorMarker(i == a.repairCursor), a.fdate(j.CreatedAt), j.CarBrand, j.CarModel, j.ClientName, bought, total, statusBadge(j.Status))
	}
	return out + a.footer("[a] Add  [enter] Parts  [s] Status  [del] Delete")
}

func (a *App) renderRepairDetail() string {
	j := a.store.RepairJobByID(a.repairDetailID)
	if j == nil {
		return a.renderRepairs()
	}
	out := titleStyle.Render(fmt.Sprintf("%s %s — %s", j.CarBrand, j.CarModel, j.ClientName)) + "\n"
	out += fmt.Sprintf("Phone: %s  Since: %s  Status: %s\n", j.ClientPhone, a.fdate(j.CreatedAt), statusBadge(j.Status))
	if j.Notes != "" {
		out += "Notes: " + j.Notes + "\n"
	}
	out += "\nParts to buy:\n"
	if len(j.Parts) == 0 {
		out += "  (none yet)\n"
	}
	for i, p := range j.Parts {
		check := "[ ]"
		if p.Purchased {
			check = "[x]"
		}
		out += fmt.Sprintf("%s %s %s ×%d\n", cursorMarker(i == a.partCursor), check, p.Name, p.Quantity)
	}
	return out + a.footer("[a] Add part  [space] Toggle bought  [s] Status  [esc] Back")
}

func partsProgress(j store.RepairJob) (bought, total int) {
	for _, p := range j.Parts {
		if p.Purchased {
			bought++
		}
	}
	return bought, len(j.Parts)
}

func (a *App) renderDashboard() string {
	out := titleStyle.Render("Workshop Dashboard") + "\n"
	out += fmt.Sprintf("Income: %s   Expenses: %s   Profit: %s\n",
		a.money(a.store.TotalIncome()), a.money(a.store.TotalExpenses()), a.money(a.store.Profit()))

	groups := a.store.ExpensesByCategory()
	if len(groups) > 0 {
		out += "Expenses by category:\n"
		for _, g := range groups {
			out += fmt.Sprintf("  %-10s %s\n", g.Category, a.money(g.TotalCents))
		}
	}

	var waiting, inProgress, completed int
	for _, j := range a.store.RepairJobs() {
		switch j.Status {
		case store.StatusInProgress:
			inProgress++
		case store.StatusCompleted:
			completed++
		default:
			waiting++
		}
	}
	out += fmt.Sprintf("Repair queue: %d waiting, %d in progress, %d completed\n", waiting, inProgress, completed)

	today := 0
	for range a.store.AppointmentsOn(time.Now().In(a.tz)) {
		today++
	}
	out += fmt.Sprintf("Clients: %d   Vehicles in stock: %d   Appointments today: %d\n",
		len(a.store.Clients()), len(a.store.Vehicles()), today)
	return out + a.footer("")
}

func (a *App) renderFinance() string {
	out := titleStyle.Render("Finance Ledger") + "\n"
	incTab, expTab := "Incomes", "Expenses"
	if a.finSection == sectionIncome {
		incTab = "[" + incTab + "]"
	} else {
		expTab = "[" + expTab + "]"
	}
	out += fmt.Sprintf("%s  %s   (tab switches)\n\n", incTab, expTab)

	if a.finSection == sectionIncome {
		list := a.store.Incomes()
		if len(list) == 0 {
			out += "No income recorded.\n"
		}
		for i, e := range list {
			out += fmt.Sprintf("%s %s  %-24s %10s  %s\n",
				cursorMarker(i == a.incomeCursor), a.fdate(e.Date), e.Source, a.money(e.AmountCents), e.Description)
		}
	} else {
		list := a.store.Expenses()
		if len(list) == 0 {
			out += "No expenses recorded.\n"
		}
		for i, e := range list {
			out += fmt.Sprintf("%s %s  %-10s %10s  %s\n",
				cursorMarker(i == a.expenseCursor), a.fdate(e.Date), e.Category, a.money(e.AmountCents), e.Description)
		}
	}
	out += fmt.Sprintf("\nTotal income %s   Total expenses %s   Profit %s\n",
		a.money(a.store.TotalIncome()), a.money(a.store.TotalExpenses()), a.money(a.store.Profit()))
	return out + a.footer("[a] Add  [e] Edit  [del] Delete  [i] Import CSV  [o] Export CSV")
}

func (a *App) renderClients() string {
	out := titleStyle.Render("Clients") + "\n"
	if a.searching || a.searchQuery != "" {
		out += "Search: " + a.searchQuery
		if a.searching {
			out += "▌"
		}
		out += "\n"
	}
	visible := a.visibleClients()
	if len(visible) == 0 {
		out += "No clients found.\n"
	}
	for i, c := range visible {
		out += fmt.Sprintf("%s %-22s %-18s %-22s last visit %s\n",
			cursorMarker(i == a.clientCursor), c.Name, c.Phone, c.Car, a.fdate(c.LastVisit))
	}
	return out + a.footer("[a] Add  [/] Search  [del] Delete")
}

func (a *App) renderVehicles() string {
	if a.vehicleDetailID != "" {
		return a.renderVehicleDetail()
	}
	out := titleStyle.Render("Vehicles for Resale") + "\n"
	vehicles := a.store.Vehicles()
	if len(vehicles) == 0 {
		out += "No vehicles in stock.\n"
	}
	for i, v := range vehicles {
		invested := v.PriceCents + a.store.VehicleTotalExpenses(v.ID)
		out += fmt.Sprintf("%s %-22s %-6s bought %s  invested %s\n",
			cursorMarker(i == a.vehicleCursor), v.Name, v.Year, a.money(v.PriceCents), a.money(invested))
	}
	return out + a.footer("[a] Add  [enter] Expenses  [del] Delete")
}

func (a *App) renderVehicleDetail() string {
	v := a.store.VehicleByID(a.vehicleDetailID)
	if v == nil {
		return a.renderVehicles()
	}
	out := titleStyle.Render(v.Name+" "+v.Year) + "\n"
	out += fmt.Sprintf("VIN: %s  Reg: %s  Prev. owner: %s\n", v.VIN, v.Registration, v.PreviousOwner)
	out += fmt.Sprintf("Purchase price: %s\n\nExpenses:\n", a.money(v.PriceCents))
	if len(v.Expenses) == 0 {
		out += "  (none yet)\n"
	}
	for _, e := range v.Expenses {
		out += fmt.Sprintf("  %s  %-24s %s\n", a.fdate(e.Date), e.Description, a.money(e.AmountCents))
	}
	out += fmt.Sprintf("\nTotal expenses: %s   Total invested: %s\n",
		a.money(a.store.VehicleTotalExpenses(v.ID)), a.money(v.PriceCents+a.store.VehicleTotalExpenses(v.ID)))
	return out + a.footer("[a] Add expense  [esc] Back")
}

func (a *App) renderCalendar() string {
	out := titleStyle.Render("Appointments — "+a.selectedDate.Format(a.dateFmt)) + "\n"
	out += "[h] Prev day  [l] Next day  [t] Today\n\n"
	appts := a.appointmentsOnSelected()
	if len(appts) == 0 {
		out += "No appointments on this day.\n"
	}
	for i, ap := range appts {
		plate := ap.PlateNumber
		if plate != "" {
			plate = " (" + plate + ")"
		}
		out += fmt.Sprintf("%s %-5s %-20s %s%s  %s\n",
			cursorMarker(i == a.apptCursor), ap.Time, ap.ClientName, ap.Car, plate, ap.Phone)
	}
	return out + a.footer("[a] Book  [del] Delete")
}

func (a *App) renderSettings() string {
	out := titleStyle.Render("Settings") + "\n"
	out += fmt.Sprintf("Currency symbol: %s\n", a.currency)
	out += fmt.Sprintf("Date format:     %s\n", a.dateFmt)
	out += fmt.Sprintf("Timezone:        %s\n", a.cfg.UI.Timezone)
	out += "\n[e] Edit currency  [x] Reset session\n"
	return out + a.footer("")
}

func (a *App) renderStatusPicker() string {
	statuses := []store.RepairStatus{store.StatusWaiting, store.StatusInProgress, store.StatusCompleted}
	out := titleStyle.Render("Set repair status") + "\n"
	for i, s := range statuses {
		out += fmt.Sprintf("%s %s\n", cursorMarker(i == a.statusCursor), statusBadge(s))
	}
	out += "[enter] Select  [esc] Cancel"
	return out
}

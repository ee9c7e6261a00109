package store

import "time"

// Client represents a customer record.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Car       string
	LastVisit time.Time
}

// Income represents one income ledger entry. Amounts are integer cents.
type Income struct {
	ID          string
	Date        time.Time
	Source      string
	AmountCents int64
	Description string
}

// ExpenseCategory is the fixed set of expense groupings.
type ExpenseCategory string

const (
	CategoryParts     ExpenseCategory = "parts"
	CategoryRent      ExpenseCategory = "rent"
	CategoryTools     ExpenseCategory = "tools"
	CategorySalary    ExpenseCategory = "salary"
	CategoryUtilities ExpenseCategory = "utilities"
)

// ExpenseCategories lists every valid category in display order.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{CategoryParts, CategoryRent, CategoryTools, CategorySalary, CategoryUtilities}
}

// Expense represents one categorised expense ledger entry.
type Expense struct {
	ID          string
	Date        time.Time
	Category    ExpenseCategory
	AmountCents int64
	Description string
}

// Vehicle is a purchased car in the resale inventory. It exclusively
// owns its Expenses; deleting the vehicle deletes them with it.
type Vehicle struct {
	ID            string
	Name          string
	Year          string
	VIN           string
	Registration  string
	PreviousOwner string
	PriceCents    int64
	Expenses      []VehicleExpense
}

// VehicleExpense is a cost booked against a single vehicle.
type VehicleExpense struct {
	ID          string
	Description string
	AmountCents int64
	Date        time.Time
}

// RepairStatus is the repair queue state.
type RepairStatus string

const (
	StatusWaiting    RepairStatus = "waiting"
	StatusInProgress RepairStatus = "in_progress"
	StatusCompleted  RepairStatus = "completed"
)

// ValidStatus reports whether s is one of the three queue states.
func ValidStatus(s RepairStatus) bool {
	switch s {
	case StatusWaiting, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// RepairJob is a car currently in the shop, with its parts checklist.
type RepairJob struct {
	ID          string
	CarBrand    string
	CarModel    string
	ClientName  string
	ClientPhone string
	Notes       string
	Status      RepairStatus
	CreatedAt   time.Time
	Parts       []RepairPart
}

// RepairPart is one line of a repair job's parts-to-buy checklist.
type RepairPart struct {
	ID        string
	Name      string
	Quantity  int
	Purchased bool
}

// Appointment is a scheduled client visit. Date carries the calendar
// day; time-of-day is kept separately as entered.
type Appointment struct {
	ID          string
	Date        time.Time
	Time        string
	ClientName  string
	Car         string
	PlateNumber string
	Phone       string
}

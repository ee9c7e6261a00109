package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IncomeFields carries raw form input for an income entry. Date and
// Amount arrive as typed text; the store owns parsing so a malformed
// amount is rejected instead of silently stored.
type IncomeFields struct {
	Date        string // "2006-01-02"; empty means today
	Source      string
	Amount      string // dollars, e.g. "120" or "120.50"
	Description string
}

// ExpenseFields carries raw form input for an expense entry.
type ExpenseFields struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

// CategoryTotal is one row of the per-category expense breakdown.
type CategoryTotal struct {
	Category   ExpenseCategory
	TotalCents int64
}

// AddIncome validates fields and appends a new entry.
func (s *Store) AddIncome(f IncomeFields) (Income, error) {
	inc, err := s.buildIncome(f)
	if err != nil {
		return Income{}, err
	}
	inc.ID = uuid.NewString()
	s.incomes = append(s.incomes, inc)
	return inc, nil
}

// UpdateIncome replaces the entry matching id in place, keeping its
// position in the ledger.
func (s *Store) UpdateIncome(id string, f IncomeFields) (Income, error) {
	inc, err := s.buildIncome(f)
	if err != nil {
		return Income{}, err
	}
	for i := range s.incomes {
		if s.incomes[i].ID == id {
			inc.ID = id
			out := append([]Income(nil), s.incomes...)
			out[i] = inc
			s.incomes = out
			return inc, nil
		}
	}
	return Income{}, fmt.Errorf("income %s: %w", id, ErrNotFound)
}

// DeleteIncome removes the matching entry. Absent id is a no-op.
func (s *Store) DeleteIncome(id string) {
	s.incomes = deleteByID(s.incomes, id, func(e Income) string { return e.ID })
}

// IncomeByID returns the entry matching id, or nil.
func (s *Store) IncomeByID(id string) *Income {
	for i := range s.incomes {
		if s.incomes[i].ID == id {
			e := s.incomes[i]
			return &e
		}
	}
	return nil
}

func (s *Store) buildIncome(f IncomeFields) (Income, error) {
	if strings.TrimSpace(f.Source) == "" {
		return Income{}, fmt.Errorf("income source required: %w", ErrValidation)
	}
	cents, err := ParseAmount(f.Amount)
	if err != nil {
		return Income{}, err
	}
	date, err := s.parseDate(f.Date)
	if err != nil {
		return Income{}, err
	}
	return Income{
		Date:        date,
		Source:      strings.TrimSpace(f.Source),
		AmountCents: cents,
		Description: strings.TrimSpace(f.Description),
	}, nil
}

// AddExpense validates fields and appends a new entry. The category
// must be chosen from the fixed set; there is no silent default.
func (s *Store) AddExpense(f ExpenseFields) (Expense, error) {
	exp, err := s.buildExpense(f)
	if err != nil {
		return Expense{}, err
	}
	exp.ID = uuid.NewString()
	s.expenses = append(s.expenses, exp)
	return exp, nil
}

// UpdateExpense replaces the entry matching id in place.
func (s *Store) UpdateExpense(id string, f ExpenseFields) (Expense, error) {
	exp, err := s.buildExpense(f)
	if err != nil {
		return Expense{}, err
	}
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			exp.ID = id
			out := append([]Expense(nil), s.expenses...)
			out[i] = exp
			s.expenses = out
			return exp, nil
		}
	}
	return Expense{}, fmt.Errorf("expense %s: %w", id, ErrNotFound)
}

// DeleteExpense removes the matching entry. Absent id is a no-op.
func (s *Store) DeleteExpense(id string) {
	s.expenses = deleteByID(s.expenses, id, func(e Expense) string { return e.ID })
}

// ExpenseByID returns the entry matching id, or nil.
func (s *Store) ExpenseByID(id string) *Expense {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			e := s.expenses[i]
			return &e
		}
	}
	return nil
}

func (s *Store) buildExpense(f ExpenseFields) (Expense, error) {
	cat := ExpenseCategory(strings.TrimSpace(f.Category))
	if cat == "" {
		return Expense{}, fmt.Errorf("expense category required: %w", ErrValidation)
	}
	if !validCategory(cat) {
		return Expense{}, fmt.Errorf("unknown expense category %q: %w", cat, ErrValidation)
	}
	cents, err := ParseAmount(f.Amount)
	if err != nil {
		return Expense{}, err
	}
	date, err := s.parseDate(f.Date)
	if err != nil {
		return Expense{}, err
	}
	return Expense{
		Date:        date,
		Category:    cat,
		AmountCents: cents,
		Description: strings.TrimSpace(f.Description),
	}, nil
}

// TotalIncome sums the income ledger. Recomputed on every call.
func (s *Store) TotalIncome() int64 {
	var sum int64
	for _, e := range s.incomes {
		sum += e.AmountCents
	}
	return sum
}

// TotalExpenses sums the expense ledger.
func (s *Store) TotalExpenses() int64 {
	var sum int64
	for _, e := range s.expenses {
		sum += e.AmountCents
	}
	return sum
}

// Profit is TotalIncome minus TotalExpenses.
func (s *Store) Profit() int64 {
	return s.TotalIncome() - s.TotalExpenses()
}

// ExpensesByCategory groups expense amounts per category, ordered by
// first occurrence in the ledger.
func (s *Store) ExpensesByCategory() []CategoryTotal {
	idx := map[ExpenseCategory]int{}
	var out []CategoryTotal
	for _, e := range s.expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, CategoryTotal{Category: e.Category})
		}
		out[i].TotalCents += e.AmountCents
	}
	return out
}

func validCategory(c ExpenseCategory) bool {
	for _, v := range ExpenseCategories() {
		if c == v {
			return true
		}
	}
	return false
}

// ParseAmount converts a typed dollar amount to non-negative cents.
// Non-numeric input is a validation error, not a NaN-shaped zero.
func ParseAmount(s string) (int64, error) {
	t := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if t == "" {
		return 0, fmt.Errorf("amount required: %w", ErrValidation)
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("amount %q is not a number: %w", s, ErrValidation)
	}
	if f < 0 {
		return 0, fmt.Errorf("amount %q is negative: %w", s, ErrValidation)
	}
	cents := int64(f*100 + 0.5)
	return cents, nil
}

// FormatAmount renders cents as a dollar string for forms and CSV.
func FormatAmount(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}

// parseDate interprets a typed date, defaulting empty to today.
func (s *Store) parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return s.today(), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, v, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD: %w", v, ErrValidation)
	}
	return t, nil
}

// deleteByID filters one entry out, replacing the backing slice only
// when something was removed.
func deleteByID[T any](list []T, id string, key func(T) string) []T {
	for i := range list {
		if key(list[i]) == id {
			out := make([]T, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return list
}

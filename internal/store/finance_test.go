package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := New(time.UTC)
	s.SetClock(func() time.Time { return time.Date(2024, 12, 10, 15, 30, 0, 0, time.UTC) })
	return s
}

func TestAddIncomeDefaultsDateToToday(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	inc, err := s.AddIncome(IncomeFields{Source: "Oil change", Amount: "120.50"})
	require.NoError(t, err)
	require.NotEmpty(t, inc.ID)
	require.Equal(t, int64(12050), inc.AmountCents)
	require.Equal(t, time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), inc.Date)

	require.Len(t, s.Incomes(), 1)
}

func TestAddIncomeValidation(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	_, err := s.AddIncome(IncomeFields{Source: "", Amount: "100"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.AddIncome(IncomeFields{Source: "Repair", Amount: ""})
	require.ErrorIs(t, err, ErrValidation)

	// malformed numbers must be rejected, never stored as garbage
	_, err = s.AddIncome(IncomeFields{Source: "Repair", Amount: "12x"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.AddIncome(IncomeFields{Source: "Repair", Amount: "-5"})
	require.ErrorIs(t, err, ErrValidation)

	require.Empty(t, s.Incomes(), "failed adds must leave state untouched")
}

func TestUpdateIncomeRoundTrip(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	first, err := s.AddIncome(IncomeFields{Source: "Diagnostics", Amount: "30"})
	require.NoError(t, err)
	_, err = s.AddIncome(IncomeFields{Source: "Tyres", Amount: "200"})
	require.NoError(t, err)

	got, err := s.UpdateIncome(first.ID, IncomeFields{Date: "2024-11-01", Source: "Diagnostics+", Amount: "45", Description: "full scan"})
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)

	stored := s.IncomeByID(first.ID)
	require.NotNil(t, stored)
	require.Equal(t, "Diagnostics+", stored.Source)
	require.Equal(t, int64(4500), stored.AmountCents)
	require.Equal(t, "full scan", stored.Description)
	require.Equal(t, "Diagnostics+", s.Incomes()[0].Source, "update keeps position")

	_, err = s.UpdateIncome("missing", IncomeFields{Source: "x", Amount: "1"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIncomeIdempotent(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	inc, err := s.AddIncome(IncomeFields{Source: "Wash", Amount: "15"})
	require.NoError(t, err)

	s.DeleteIncome(inc.ID)
	require.Empty(t, s.Incomes())
	s.DeleteIncome(inc.ID) // second delete is a no-op, not an error
	require.Empty(t, s.Incomes())
}

func TestExpenseCategoryRequired(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	_, err := s.AddExpense(ExpenseFields{Amount: "10", Description: "no category"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.AddExpense(ExpenseFields{Category: "snacks", Amount: "10"})
	require.ErrorIs(t, err, ErrValidation)

	exp, err := s.AddExpense(ExpenseFields{Category: "rent", Amount: "500"})
	require.NoError(t, err)
	require.Equal(t, CategoryRent, exp.Category)
}

func TestProfitInvariant(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	require.Zero(t, s.TotalIncome())
	require.Zero(t, s.TotalExpenses())
	require.Zero(t, s.Profit())

	_, err := s.AddIncome(IncomeFields{Source: "Engine swap", Amount: "1500"})
	require.NoError(t, err)
	_, err = s.AddExpense(ExpenseFields{Category: "parts", Amount: "250"})
	require.NoError(t, err)
	_, err = s.AddExpense(ExpenseFields{Category: "rent", Amount: "500"})
	require.NoError(t, err)

	require.Equal(t, s.TotalIncome()-s.TotalExpenses(), s.Profit())
	require.Equal(t, int64(75000), s.TotalExpenses())
}

func TestExpensesByCategory(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	_, err := s.AddExpense(ExpenseFields{Category: "parts", Amount: "250"})
	require.NoError(t, err)
	_, err = s.AddExpense(ExpenseFields{Category: "rent", Amount: "500"})
	require.NoError(t, err)
	_, err = s.AddExpense(ExpenseFields{Category: "parts", Amount: "100"})
	require.NoError(t, err)

	groups := s.ExpensesByCategory()
	require.Len(t, groups, 2)
	require.Equal(t, CategoryParts, groups[0].Category, "first-occurrence order")
	require.Equal(t, int64(35000), groups[0].TotalCents)
	require.Equal(t, CategoryRent, groups[1].Category)

	var sum int64
	for _, g := range groups {
		sum += g.TotalCents
	}
	require.Equal(t, s.TotalExpenses(), sum)
}

func TestUniqueIDs(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		inc, err := s.AddIncome(IncomeFields{Source: "Job", Amount: "10"})
		require.NoError(t, err)
		require.False(t, seen[inc.ID], "id %s repeated", inc.ID)
		seen[inc.ID] = true
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cents, err := ParseAmount("1,250.75")
	require.NoError(t, err)
	require.Equal(t, int64(125075), cents)

	_, err = ParseAmount("NaN-ish")
	require.True(t, errors.Is(err, ErrValidation))

	require.Equal(t, "12.50", FormatAmount(1250))
}

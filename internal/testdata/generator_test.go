package testdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avtomaster/workshop/internal/store"
)

func TestSeedProducesValidEntities(t *testing.T) {
	t.Parallel()
	s := store.New(time.UTC)

	require.NoError(t, Seed(s))

	require.NotEmpty(t, s.Clients())
	require.NotEmpty(t, s.Incomes())
	require.NotEmpty(t, s.Expenses())
	require.NotEmpty(t, s.Vehicles())
	require.NotEmpty(t, s.RepairJobs())
	require.Equal(t, s.TotalIncome()-s.TotalExpenses(), s.Profit())

	// today's seeded appointment is visible on the calendar
	n := 0
	for range s.AppointmentsOn(time.Now().UTC()) {
		n++
	}
	require.Equal(t, 1, n)
}

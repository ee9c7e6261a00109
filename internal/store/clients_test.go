package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddClientStampsLastVisit(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	c, err := s.AddClient(ClientFields{Name: "Ivan Petrov", Phone: "+7 900 123 45 67", Car: "Lada Vesta 2019"})
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), c.LastVisit)

	_, err = s.AddClient(ClientFields{Name: "  "})
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeleteClientIdempotent(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	c, err := s.AddClient(ClientFields{Name: "Ivan"})
	require.NoError(t, err)
	other, err := s.AddClient(ClientFields{Name: "Olga"})
	require.NoError(t, err)

	s.DeleteClient(c.ID)
	s.DeleteClient(c.ID)
	require.Len(t, s.Clients(), 1)
	require.Equal(t, other.ID, s.Clients()[0].ID)
}

func TestReset(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	_, err := s.AddClient(ClientFields{Name: "Ivan"})
	require.NoError(t, err)
	_, err = s.AddIncome(IncomeFields{Source: "Job", Amount: "10"})
	require.NoError(t, err)
	_, err = s.AddRepairJob(RepairJobFields{CarBrand: "Kia"})
	require.NoError(t, err)

	s.Reset()
	require.Empty(t, s.Clients())
	require.Empty(t, s.Incomes())
	require.Empty(t, s.RepairJobs())
	require.Zero(t, s.Profit())
}

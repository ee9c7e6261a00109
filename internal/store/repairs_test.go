package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepairJobLifecycle(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	job, err := s.AddRepairJob(RepairJobFields{CarBrand: "Toyota", CarModel: "Corolla", ClientName: "Ivan", ClientPhone: "+7 900 000 00 00"})
	require.NoError(t, err)
	require.Equal(t, StatusWaiting, job.Status)
	require.Empty(t, job.Parts)

	part, err := s.AddRepairPart(job.ID, "Brake pad", 2)
	require.NoError(t, err)
	require.Equal(t, 2, part.Quantity)
	require.False(t, part.Purchased)

	require.NoError(t, s.TogglePartPurchased(job.ID, part.ID))
	require.True(t, s.RepairJobByID(job.ID).Parts[0].Purchased)
	require.NoError(t, s.TogglePartPurchased(job.ID, part.ID))
	require.False(t, s.RepairJobByID(job.ID).Parts[0].Purchased)

	require.NoError(t, s.SetRepairStatus(job.ID, StatusInProgress))
	require.NoError(t, s.SetRepairStatus(job.ID, StatusCompleted))
	// the queue allows moving back; nothing enforces forward-only
	require.NoError(t, s.SetRepairStatus(job.ID, StatusWaiting))

	s.DeleteRepairJob(job.ID)
	require.Nil(t, s.RepairJobByID(job.ID))
}

func TestRepairQueueNewestFirst(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	_, err := s.AddRepairJob(RepairJobFields{CarBrand: "Lada"})
	require.NoError(t, err)
	second, err := s.AddRepairJob(RepairJobFields{CarBrand: "Kia"})
	require.NoError(t, err)

	jobs := s.RepairJobs()
	require.Len(t, jobs, 2)
	require.Equal(t, second.ID, jobs[0].ID)
}

func TestRepairValidation(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	job, err := s.AddRepairJob(RepairJobFields{CarBrand: "UAZ"})
	require.NoError(t, err)

	_, err = s.AddRepairPart(job.ID, "   ", 1)
	require.ErrorIs(t, err, ErrValidation)

	p, err := s.AddRepairPart(job.ID, "Filter", 0)
	require.NoError(t, err)
	require.Equal(t, 1, p.Quantity, "zero quantity defaults to 1")

	_, err = s.AddRepairPart(job.ID, "Filter", -3)
	require.ErrorIs(t, err, ErrValidation)

	require.ErrorIs(t, s.SetRepairStatus(job.ID, "parked"), ErrValidation)
	require.ErrorIs(t, s.SetRepairStatus("missing", StatusWaiting), ErrNotFound)
	_, err = s.AddRepairPart("missing", "Filter", 1)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.TogglePartPurchased(job.ID, "missing"), ErrNotFound)
	require.ErrorIs(t, s.TogglePartPurchased("missing", p.ID), ErrNotFound)
}

package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RepairJobFields carries raw form input for a repair job.
type RepairJobFields struct {
	CarBrand    string
	CarModel    string
	ClientName  string
	ClientPhone string
	Notes       string
}

// AddRepairJob prepends a new job to the queue (newest first) with
// status waiting, an empty parts list and CreatedAt = today.
func (s *Store) AddRepairJob(f RepairJobFields) (RepairJob, error) {
	if strings.TrimSpace(f.CarBrand) == "" {
		return RepairJob{}, fmt.Errorf("car brand required: %w", ErrValidation)
	}
	j := RepairJob{
		ID:          uuid.NewString(),
		CarBrand:    strings.TrimSpace(f.CarBrand),
		CarModel:    strings.TrimSpace(f.CarModel),
		ClientName:  strings.TrimSpace(f.ClientName),
		ClientPhone: strings.TrimSpace(f.ClientPhone),
		Notes:       strings.TrimSpace(f.Notes),
		Status:      StatusWaiting,
		CreatedAt:   s.today(),
	}
	s.repairs = append([]RepairJob{j}, s.repairs...)
	return j, nil
}

// SetRepairStatus overwrites the job's status. Transitions are
// any-to-any; the shop moves jobs backwards when work reopens.
func (s *Store) SetRepairStatus(jobID string, status RepairStatus) error {
	if !ValidStatus(status) {
		return fmt.Errorf("unknown repair status %q: %w", status, ErrValidation)
	}
	for i := range s.repairs {
		if s.repairs[i].ID == jobID {
			out := append([]RepairJob(nil), s.repairs...)
			out[i].Status = status
			s.repairs = out
			return nil
		}
	}
	return fmt.Errorf("repair job %s: %w", jobID, ErrNotFound)
}

// AddRepairPart appends an unpurchased part to the job's checklist.
// Quantity 0 means "unset" and defaults to 1; negatives are rejected.
func (s *Store) AddRepairPart(jobID, name string, quantity int) (RepairPart, error) {
	if strings.TrimSpace(name) == "" {
		return RepairPart{}, fmt.Errorf("part name required: %w", ErrValidation)
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return RepairPart{}, fmt.Errorf("part quantity %d: must be positive: %w", quantity, ErrValidation)
	}
	for i := range s.repairs {
		if s.repairs[i].ID != jobID {
			continue
		}
		p := RepairPart{
			ID:       uuid.NewString(),
			Name:     strings.TrimSpace(name),
			Quantity: quantity,
		}
		out := append([]RepairJob(nil), s.repairs...)
		out[i].Parts = append(append([]RepairPart(nil), out[i].Parts...), p)
		s.repairs = out
		return p, nil
	}
	return RepairPart{}, fmt.Errorf("repair job %s: %w", jobID, ErrNotFound)
}

// TogglePartPurchased flips the part's purchased flag.
func (s *Store) TogglePartPurchased(jobID, partID string) error {
	for i := range s.repairs {
		if s.repairs[i].ID != jobID {
			continue
		}
		for j := range s.repairs[i].Parts {
			if s.repairs[i].Parts[j].ID != partID {
				continue
			}
			out := append([]RepairJob(nil), s.repairs...)
			parts := append([]RepairPart(nil), out[i].Parts...)
			parts[j].Purchased = !parts[j].Purchased
			out[i].Parts = parts
			s.repairs = out
			return nil
		}
		return fmt.Errorf("part %s: %w", partID, ErrNotFound)
	}
	return fmt.Errorf("repair job %s: %w", jobID, ErrNotFound)
}

// DeleteRepairJob removes the job and its parts. Absent id is a no-op.
func (s *Store) DeleteRepairJob(jobID string) {
	s.repairs = deleteByID(s.repairs, jobID, func(j RepairJob) string { return j.ID })
}

// RepairJobByID returns the job matching id, or nil.
func (s *Store) RepairJobByID(id string) *RepairJob {
	for i := range s.repairs {
		if s.repairs[i].ID == id {
			j := s.repairs[i]
			return &j
		}
	}
	return nil
}

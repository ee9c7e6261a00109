package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// VehicleFields carries raw form input for an inventory vehicle.
type VehicleFields struct {
	Name          string
	Year          string
	VIN           string
	Registration  string
	PreviousOwner string
	Price         string
}

// VehicleExpenseFields carries raw form input for a vehicle expense.
type VehicleExpenseFields struct {
	Description string
	Amount      string
	Date        string // empty means today
}

// AddVehicle appends a vehicle with an empty expense list.
func (s *Store) AddVehicle(f VehicleFields) (Vehicle, error) {
	if strings.TrimSpace(f.Name) == "" {
		return Vehicle{}, fmt.Errorf("vehicle name required: %w", ErrValidation)
	}
	price, err := ParseAmount(f.Price)
	if err != nil {
		return Vehicle{}, err
	}
	v := Vehicle{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(f.Name),
		Year:          strings.TrimSpace(f.Year),
		VIN:           strings.TrimSpace(f.VIN),
		Registration:  strings.TrimSpace(f.Registration),
		PreviousOwner: strings.TrimSpace(f.PreviousOwner),
		PriceCents:    price,
	}
	s.vehicles = append(s.vehicles, v)
	return v, nil
}

// DeleteVehicle removes the vehicle and, because its expenses are
// nested inside it, every expense it owns. Absent id is a no-op.
func (s *Store) DeleteVehicle(id string) {
	s.vehicles = deleteByID(s.vehicles, id, func(v Vehicle) string { return v.ID })
}

// AddVehicleExpense books a cost against the owning vehicle.
func (s *Store) AddVehicleExpense(vehicleID string, f VehicleExpenseFields) (VehicleExpense, error) {
	if strings.TrimSpace(f.Description) == "" {
		return VehicleExpense{}, fmt.Errorf("expense description required: %w", ErrValidation)
	}
	cents, err := ParseAmount(f.Amount)
	if err != nil {
		return VehicleExpense{}, err
	}
	date, err := s.parseDate(f.Date)
	if err != nil {
		return VehicleExpense{}, err
	}
	for i := range s.vehicles {
		if s.vehicles[i].ID != vehicleID {
			continue
		}
		e := VehicleExpense{
			ID:          uuid.NewString(),
			Description: strings.TrimSpace(f.Description),
			AmountCents: cents,
			Date:        date,
		}
		out := append([]Vehicle(nil), s.vehicles...)
		out[i].Expenses = append(append([]VehicleExpense(nil), out[i].Expenses...), e)
		s.vehicles = out
		return e, nil
	}
	return VehicleExpense{}, fmt.Errorf("vehicle %s: %w", vehicleID, ErrNotFound)
}

// VehicleTotalExpenses sums the vehicle's nested expense amounts.
// Unknown vehicle sums to zero.
func (s *Store) VehicleTotalExpenses(vehicleID string) int64 {
	var sum int64
	for i := range s.vehicles {
		if s.vehicles[i].ID == vehicleID {
			for _, e := range s.vehicles[i].Expenses {
				sum += e.AmountCents
			}
		}
	}
	return sum
}

// VehicleByID returns the vehicle matching id, or nil.
func (s *Store) VehicleByID(id string) *Vehicle {
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			v := s.vehicles[i]
			return &v
		}
	}
	return nil
}

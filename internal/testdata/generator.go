// Package testdata seeds a fresh session with demo data so the
// console has something to show on first run.
package testdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/avtomaster/workshop/internal/store"
)

// Seed fills an empty store with sample clients, ledger entries,
// vehicles, repair jobs and appointments.
func Seed(s *store.Store) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	clients := []store.ClientFields{
		{Name: "Ivan Petrov", Phone: "+7 900 123 45 67", Car: "Lada Vesta 2019"},
		{Name: "Olga Sidorova", Phone: "+7 900 765 43 21", Car: "Kia Rio 2021"},
		{Name: "Sergey Volkov", Phone: "+7 911 222 33 44", Car: "Toyota Camry 2017"},
	}
	for _, c := range clients {
		if _, err := s.AddClient(c); err != nil {
			return fmt.Errorf("seed client: %w", err)
		}
	}

	sources := []string{"Oil change", "Brake service", "Diagnostics", "Engine repair", "Tyre swap"}
	for i := 0; i < 8; i++ {
		f := store.IncomeFields{
			Source: sources[rng.Intn(len(sources))],
			Amount: fmt.Sprintf("%d", rng.Intn(400)+50),
		}
		if _, err := s.AddIncome(f); err != nil {
			return fmt.Errorf("seed income: %w", err)
		}
	}

	cats := store.ExpenseCategories()
	for i := 0; i < 6; i++ {
		f := store.ExpenseFields{
			Category: string(cats[rng.Intn(len(cats))]),
			Amount:   fmt.Sprintf("%d", rng.Intn(300)+20),
		}
		if _, err := s.AddExpense(f); err != nil {
			return fmt.Errorf("seed expense: %w", err)
		}
	}

	v, err := s.AddVehicle(store.VehicleFields{
		Name: "Volkswagen Passat B7", Year: "2013", VIN: "WVWZZZ3CZDE123456",
		Registration: "А123ВС77", PreviousOwner: "Auction", Price: "5200",
	})
	if err != nil {
		return fmt.Errorf("seed vehicle: %w", err)
	}
	if _, err := s.AddVehicleExpense(v.ID, store.VehicleExpenseFields{Description: "Timing belt", Amount: "180"}); err != nil {
		return fmt.Errorf("seed vehicle expense: %w", err)
	}

	job, err := s.AddRepairJob(store.RepairJobFields{
		CarBrand: "Toyota", CarModel: "Camry", ClientName: "Sergey Volkov",
		ClientPhone: "+7 911 222 33 44", Notes: "knocking from front left",
	})
	if err != nil {
		return fmt.Errorf("seed repair job: %w", err)
	}
	if _, err := s.AddRepairPart(job.ID, "Stabilizer link", 2); err != nil {
		return fmt.Errorf("seed repair part: %w", err)
	}

	today := time.Now().In(s.Location())
	if _, err := s.AddAppointment(today, store.AppointmentFields{
		ClientName: "Ivan Petrov", Car: "Lada Vesta", PlateNumber: "В456ОР77",
		Phone: "+7 900 123 45 67", Time: "10:30",
	}); err != nil {
		return fmt.Errorf("seed appointment: %w", err)
	}
	return nil
}

package store

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentFields carries raw form input for a scheduled visit.
// The date comes from the calendar's current selection, not the form.
type AppointmentFields struct {
	ClientName  string
	Car         string
	PlateNumber string
	Phone       string
	Time        string // "15:04" as entered
}

// AddAppointment books a visit on the selected date. A zero date
// means no day was selected on the calendar and is rejected.
func (s *Store) AddAppointment(date time.Time, f AppointmentFields) (Appointment, error) {
	if date.IsZero() {
		return Appointment{}, fmt.Errorf("no date selected: %w", ErrValidation)
	}
	if strings.TrimSpace(f.ClientName) == "" {
		return Appointment{}, fmt.Errorf("client name required: %w", ErrValidation)
	}
	a := Appointment{
		ID:          uuid.NewString(),
		Date:        date.In(s.loc),
		Time:        strings.TrimSpace(f.Time),
		ClientName:  strings.TrimSpace(f.ClientName),
		Car:         strings.TrimSpace(f.Car),
		PlateNumber: strings.TrimSpace(f.PlateNumber),
		Phone:       strings.TrimSpace(f.Phone),
	}
	s.appointments = append(s.appointments, a)
	return a, nil
}

// DeleteAppointment removes the matching visit. Absent id is a no-op.
func (s *Store) DeleteAppointment(id string) {
	s.appointments = deleteByID(s.appointments, id, func(a Appointment) string { return a.ID })
}

// AppointmentsOn yields the visits booked on day's calendar date, in
// insertion order. Time-of-day on either side is ignored. The
// sequence is restartable and reflects the collection at range time.
func (s *Store) AppointmentsOn(day time.Time) iter.Seq[Appointment] {
	return func(yield func(Appointment) bool) {
		for _, a := range s.appointments {
			if !sameDay(a.Date.In(s.loc), day.In(s.loc)) {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

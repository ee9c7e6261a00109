package store

import "time"

// Store owns the session's entity collections. Mutations replace the
// backing slice so the rendering layer can treat every read as a
// fresh snapshot.
type Store struct {
	clients      []Client
	incomes      []Income
	expenses     []Expense
	vehicles     []Vehicle
	repairs      []RepairJob
	appointments []Appointment

	loc *time.Location
	now func() time.Time
}

// New returns an empty store. Calendar-day logic ("today", same-day
// filtering) is evaluated in loc; nil means time.Local.
func New(loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{loc: loc, now: time.Now}
}

// SetClock overrides the store's time source. Test hook.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// Location returns the store's calendar location.
func (s *Store) Location() *time.Location { return s.loc }

// today truncates the current time to a calendar date in s.loc.
func (s *Store) today() time.Time {
	return dateOnly(s.now().In(s.loc))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// sameDay reports calendar-day equality ignoring time-of-day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Reset wipes every collection. The schema of the session (category
// set, status set) is code, so the app keeps running on empty data.
func (s *Store) Reset() {
	s.clients = nil
	s.incomes = nil
	s.expenses = nil
	s.vehicles = nil
	s.repairs = nil
	s.appointments = nil
}

// Clients returns the client registry in insertion order.
func (s *Store) Clients() []Client { return s.clients }

// Incomes returns the income ledger in insertion order.
func (s *Store) Incomes() []Income { return s.incomes }

// Expenses returns the expense ledger in insertion order.
func (s *Store) Expenses() []Expense { return s.expenses }

// Vehicles returns the resale inventory in insertion order.
func (s *Store) Vehicles() []Vehicle { return s.vehicles }

// RepairJobs returns the repair queue, newest first.
func (s *Store) RepairJobs() []RepairJob { return s.repairs }

// Appointments returns every appointment in insertion order.
func (s *Store) Appointments() []Appointment { return s.appointments }

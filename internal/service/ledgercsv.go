package service

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/avtomaster/workshop/internal/store"
)

// LedgerCSV imports and exports the finance ledger as CSV.
// Columns: kind, date, source_or_category, amount, description
// where kind is "income" or "expense" and amount is dollars.
type LedgerCSV struct {
	Store *store.Store
}

// ImportResult summarises one import pass. Bad lines are collected,
// not fatal; each good line lands atomically.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// Import reads ledger rows from r into the store.
func (l *LedgerCSV) Import(r io.Reader) (ImportResult, error) {
	res := ImportResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1
	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if isHeader(rec) {
			res.Skipped++
			continue
		}
		if len(rec) < 4 {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: expected at least 4 columns", line))
			continue
		}
		kind := strings.ToLower(strings.TrimSpace(rec[0]))
		date, label, amount := rec[1], rec[2], rec[3]
		desc := ""
		if len(rec) > 4 {
			desc = rec[4]
		}
		switch kind {
		case "income":
			_, err = l.Store.AddIncome(store.IncomeFields{Date: date, Source: label, Amount: amount, Description: desc})
		case "expense":
			_, err = l.Store.AddExpense(store.ExpenseFields{Date: date, Category: label, Amount: amount, Description: desc})
		default:
			err = fmt.Errorf("unknown kind %q", rec[0])
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		res.Imported++
	}
	return res, nil
}

// Export writes the current ledger to w, incomes first, each section
// in insertion order.
func (l *LedgerCSV) Export(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kind", "date", "source_or_category", "amount", "description"}); err != nil {
		return err
	}
	for _, e := range l.Store.Incomes() {
		rec := []string{"income", e.Date.Format(time.DateOnly), e.Source, store.FormatAmount(e.AmountCents), e.Description}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	for _, e := range l.Store.Expenses() {
		rec := []string{"expense", e.Date.Format(time.DateOnly), string(e.Category), store.FormatAmount(e.AmountCents), e.Description}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func isHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "kind")
}

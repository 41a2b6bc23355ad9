// Package aggregate derives display summaries from loaded collections. Every
// function is pure and recomputed on demand; when the server offers the same
// aggregate (the financial summary), screens use the server's copy and these
// serve as the local fallback.
package aggregate

import (
	"sort"
	"strconv"
	"time"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

const monthKeyLayout = "2006-01"

// Financial totals a transaction list and buckets it by calendar month,
// chronologically. Mirrors the server's /transactions/stats/summary math.
func Financial(transactions []domain.Transaction) domain.FinancialSummary {
	summary := domain.FinancialSummary{MonthlyData: []domain.MonthlyBucket{}}
	buckets := make(map[string]*domain.MonthlyBucket)
	for _, t := range transactions {
		key := t.Date.Format(monthKeyLayout)
		b, ok := buckets[key]
		if !ok {
			b = &domain.MonthlyBucket{Month: key}
			buckets[key] = b
		}
		switch t.Type {
		case domain.TransactionIncome:
			summary.TotalIncome += t.Amount
			b.Income += t.Amount
		case domain.TransactionExpense:
			summary.TotalExpense += t.Amount
			b.Expense += t.Amount
		}
	}
	summary.NetIncome = summary.TotalIncome - summary.TotalExpense

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		summary.MonthlyData = append(summary.MonthlyData, *buckets[key])
	}
	return summary
}

// StaffPaymentRollup totals one staff member's payments. There is no server
// endpoint for this, so it is always computed here.
func StaffPaymentRollup(payments []domain.StaffPayment) domain.PaymentTotals {
	var totals domain.PaymentTotals
	for _, p := range payments {
		totals.TotalPaid += p.Amount
		if p.HoursWorked != nil {
			totals.TotalHours += *p.HoursWorked
		}
	}
	if totals.TotalHours > 0 {
		rate := totals.TotalPaid / totals.TotalHours
		totals.AverageRate = &rate
	}
	return totals
}

// SynthesizeMeasurements returns the measurement records to display for a
// customer. Detailed records are authoritative when any exist; otherwise a
// legacy basic record is promoted into a single synthetic "M1" entry with
// every style selector at its baseline. The synthetic record is display-only
// and never persisted.
func SynthesizeMeasurements(c domain.Customer) []domain.Measurement {
	if len(c.DetailedMeasurements) > 0 {
		out := make([]domain.Measurement, len(c.DetailedMeasurements))
		copy(out, c.DetailedMeasurements)
		return out
	}
	if c.Measurements == nil {
		return []domain.Measurement{}
	}
	m := domain.DefaultMeasurement()
	m.MeasurementNumber = "M1"
	m.Chest = c.Measurements.Chest
	m.Waist = c.Measurements.Waist
	m.Neck = c.Measurements.Neck
	m.Hips = c.Measurements.Hips
	m.Shoulder = c.Measurements.Shoulder
	m.Sleeve = c.Measurements.Sleeve
	m.Inseam = c.Measurements.Inseam
	return []domain.Measurement{m}
}

// DefaultMeasurementNumber synthesizes a number for a record submitted with
// the field blank: "M" plus the last five digits of the epoch-millisecond
// timestamp. Collisions across restarts are accepted.
func DefaultMeasurementNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return "M" + ms[len(ms)-5:]
}

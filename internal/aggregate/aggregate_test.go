package aggregate

import (
	"testing"
	"time"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFinancialTotals(t *testing.T) {
	transactions := []domain.Transaction{
		{Description: "Suit stitching", Amount: 5000, Date: date("2024-03-10"), Type: domain.TransactionIncome},
		{Description: "Fabric purchase", Amount: 1500, Date: date("2024-03-01"), Type: domain.TransactionExpense},
		{Description: "Alteration", Amount: 800, Date: date("2024-01-20"), Type: domain.TransactionIncome},
		{Description: "Thread stock", Amount: 300, Date: date("2024-01-05"), Type: domain.TransactionExpense},
	}

	summary := Financial(transactions)

	assert.Equal(t, 5800.0, summary.TotalIncome)
	assert.Equal(t, 1800.0, summary.TotalExpense)
	assert.Equal(t, summary.TotalIncome-summary.TotalExpense, summary.NetIncome)

	require.Len(t, summary.MonthlyData, 2)
	assert.Equal(t, "2024-01", summary.MonthlyData[0].Month)
	assert.Equal(t, 800.0, summary.MonthlyData[0].Income)
	assert.Equal(t, 300.0, summary.MonthlyData[0].Expense)
	assert.Equal(t, "2024-03", summary.MonthlyData[1].Month)
	assert.Equal(t, 5000.0, summary.MonthlyData[1].Income)
	assert.Equal(t, 1500.0, summary.MonthlyData[1].Expense)
}

func TestFinancialEmpty(t *testing.T) {
	summary := Financial(nil)
	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.TotalExpense)
	assert.Zero(t, summary.NetIncome)
	assert.Empty(t, summary.MonthlyData)
}

func TestStaffPaymentRollup(t *testing.T) {
	hours := func(h float64) *float64 { return &h }

	totals := StaffPaymentRollup([]domain.StaffPayment{
		{Amount: 12000, HoursWorked: hours(40)},
		{Amount: 6000, HoursWorked: hours(20)},
		{Amount: 2000}, // no hours recorded
	})

	assert.Equal(t, 20000.0, totals.TotalPaid)
	assert.Equal(t, 60.0, totals.TotalHours)
	require.NotNil(t, totals.AverageRate)
	assert.InDelta(t, 333.33, *totals.AverageRate, 0.01)
}

func TestStaffPaymentRollupEmpty(t *testing.T) {
	totals := StaffPaymentRollup(nil)
	assert.Zero(t, totals.TotalPaid)
	assert.Zero(t, totals.TotalHours)
	assert.Nil(t, totals.AverageRate)
}

func TestSynthesizeMeasurementsPrefersDetailed(t *testing.T) {
	customer := domain.Customer{
		Measurements: &domain.BasicMeasurements{Chest: "44"},
		DetailedMeasurements: []domain.Measurement{
			{MeasurementNumber: "M70211", Chest: "42", FrontPocket: domain.StyleYes},
		},
	}

	got := SynthesizeMeasurements(customer)

	require.Len(t, got, 1)
	assert.Equal(t, "M70211", got[0].MeasurementNumber)
	assert.Equal(t, "42", got[0].Chest, "legacy record must not be consulted")
}

func TestSynthesizeMeasurementsPromotesLegacy(t *testing.T) {
	customer := domain.Customer{
		Measurements: &domain.BasicMeasurements{Chest: "40", Waist: "34"},
	}

	got := SynthesizeMeasurements(customer)

	require.Len(t, got, 1)
	assert.Equal(t, "M1", got[0].MeasurementNumber)
	assert.Equal(t, "40", got[0].Chest)
	assert.Equal(t, "34", got[0].Waist)
	assert.Equal(t, domain.StyleNo, got[0].FrontPocket)
	assert.Equal(t, domain.PocketSingle, got[0].SidePocket)
	assert.Empty(t, got[0].Notes)
}

func TestSynthesizeMeasurementsNone(t *testing.T) {
	assert.Empty(t, SynthesizeMeasurements(domain.Customer{}))
}

func TestSynthesizeMeasurementsIsPure(t *testing.T) {
	customer := domain.Customer{
		Measurements: &domain.BasicMeasurements{Chest: "40", Neck: "16"},
	}
	first := SynthesizeMeasurements(customer)
	second := SynthesizeMeasurements(customer)
	assert.Equal(t, first, second)
	assert.Nil(t, customer.DetailedMeasurements, "synthesis must not persist onto the customer")
}

func TestDefaultMeasurementNumber(t *testing.T) {
	now := time.UnixMilli(1709312345678)
	assert.Equal(t, "M45678", DefaultMeasurementNumber(now))
}

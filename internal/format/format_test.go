package format

import (
	"testing"
	"time"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	d := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mar 1, 2024", Date(d))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "Rs 0", Currency(0))
	assert.Equal(t, "Rs 950", Currency(950))
	assert.Equal(t, "Rs 1,500", Currency(1500))
	assert.Equal(t, "Rs 1,234,568", Currency(1234567.6))
	assert.Equal(t, "-Rs 2,000", Currency(-2000))
}

func TestTransactionAmount(t *testing.T) {
	income := domain.Transaction{Amount: 5000, Type: domain.TransactionIncome}
	expense := domain.Transaction{Amount: 1500, Type: domain.TransactionExpense}
	assert.Equal(t, "+Rs 5,000", TransactionAmount(income))
	assert.Equal(t, "-Rs 1,500", TransactionAmount(expense))
}

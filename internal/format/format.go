// Package format renders dates and currency the way the dashboard displays
// them: "Jan 2, 2006" dates and PKR amounts with no decimal places.
package format

import (
	"math"
	"strconv"
	"time"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

// Date renders a timestamp as e.g. "Mar 1, 2024".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Currency renders an amount as PKR with zero decimals, e.g. "Rs 1,500".
func Currency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "Rs " + group(int64(math.Round(amount)))
}

// TransactionAmount prefixes the amount with "+" for income and "-" for
// expense.
func TransactionAmount(t domain.Transaction) string {
	prefix := "+"
	if t.Type == domain.TransactionExpense {
		prefix = "-"
	}
	return prefix + Currency(t.Amount)
}

func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

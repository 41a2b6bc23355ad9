package listview

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mr-fahad-03/grace-tailor/internal/api"
	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

// Per-screen controllers. Each binds the generic controller to one typed
// resource client and the fields its search box matches against.

func Customers(c api.CustomersClient, confirm func(string) bool, logger *slog.Logger) *Controller[domain.Customer, domain.CustomerInput] {
	src := Source[domain.Customer, domain.CustomerInput]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Delete,
	}
	return New("customers", "customer", src,
		func(item domain.Customer) string { return item.ID },
		func(item domain.Customer, needle string) bool {
			return contains(item.Name, needle) ||
				contains(item.PhoneNumber, needle) ||
				contains(item.Email, needle)
		},
		confirm, logger)
}

func Orders(c api.OrdersClient, confirm func(string) bool, logger *slog.Logger) *Controller[domain.Order, domain.OrderInput] {
	src := Source[domain.Order, domain.OrderInput]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Delete,
	}
	return New("orders", "order", src,
		func(item domain.Order) string { return item.ID },
		func(item domain.Order, needle string) bool {
			return contains(item.CustomerName, needle) ||
				contains(item.PhoneNumber, needle) ||
				contains(item.Comment, needle)
		},
		confirm, logger)
}

func Staff(c api.StaffClient, confirm func(string) bool, logger *slog.Logger) *Controller[domain.StaffMember, domain.StaffInput] {
	src := Source[domain.StaffMember, domain.StaffInput]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Delete,
	}
	return New("staff", "staff member", src,
		func(item domain.StaffMember) string { return item.ID },
		func(item domain.StaffMember, needle string) bool {
			return contains(item.Name, needle) ||
				contains(item.Position, needle) ||
				contains(item.PhoneNumber, needle)
		},
		confirm, logger)
}

// StaffPayments serves one staff member's detail screen. Payments cannot be
// edited or deleted, so only List and Create are bound.
func StaffPayments(c api.StaffPaymentsClient, staffID string, logger *slog.Logger) *Controller[domain.StaffPayment, domain.StaffPaymentInput] {
	src := Source[domain.StaffPayment, domain.StaffPaymentInput]{
		List: func(ctx context.Context) ([]domain.StaffPayment, error) {
			return c.ListByStaff(ctx, staffID)
		},
		Create: c.Create,
	}
	return New("payments", "payment", src,
		func(item domain.StaffPayment) string { return item.ID },
		func(item domain.StaffPayment, needle string) bool {
			return contains(item.Notes, needle)
		},
		nil, logger)
}

func Transactions(c api.TransactionsClient, confirm func(string) bool, logger *slog.Logger) *Controller[domain.Transaction, domain.TransactionInput] {
	src := Source[domain.Transaction, domain.TransactionInput]{
		List:   c.List,
		Create: c.Create,
		Update: c.Update,
		Remove: c.Delete,
	}
	return New("transactions", "transaction", src,
		func(item domain.Transaction) string { return item.ID },
		func(item domain.Transaction, needle string) bool {
			return contains(item.Description, needle) ||
				contains(item.Category, needle)
		},
		confirm, logger)
}

// ByType narrows a transaction list to one type. An empty type keeps
// everything, mirroring the income screen's all/income/expense toggle.
func ByType(items []domain.Transaction, t domain.TransactionType) []domain.Transaction {
	if t == "" {
		return items
	}
	out := make([]domain.Transaction, 0, len(items))
	for _, item := range items {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

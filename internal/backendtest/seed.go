package backendtest

import (
	"time"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

// Seed helpers load fixtures directly into the server's collections,
// newest-first like the real backend returns them. Blank ids are assigned.

func (s *Server) SeedCustomers(items ...domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range items {
		if c.ID == "" {
			c.ID = newID()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now().UTC()
		}
		s.customers = append([]domain.Customer{c}, s.customers...)
	}
}

func (s *Server) SeedOrders(items ...domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range items {
		if o.ID == "" {
			o.ID = newID()
		}
		if o.CreatedAt.IsZero() {
			o.CreatedAt = time.Now().UTC()
		}
		s.orders = append([]domain.Order{o}, s.orders...)
	}
}

func (s *Server) SeedStaff(items ...domain.StaffMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range items {
		if m.ID == "" {
			m.ID = newID()
		}
		s.staff = append([]domain.StaffMember{m}, s.staff...)
	}
}

func (s *Server) SeedPayments(items ...domain.StaffPayment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range items {
		if p.ID == "" {
			p.ID = newID()
		}
		s.payments = append([]domain.StaffPayment{p}, s.payments...)
	}
}

func (s *Server) SeedTransactions(items ...domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range items {
		if t.ID == "" {
			t.ID = newID()
		}
		s.transactions = append([]domain.Transaction{t}, s.transactions...)
	}
}

// PaymentsForStaff reads the stored payments for assertions about cascade
// behavior.
func (s *Server) PaymentsForStaff(staffID string) []domain.StaffPayment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.StaffPayment, 0)
	for _, p := range s.payments {
		if p.StaffID == staffID {
			out = append(out, p)
		}
	}
	return out
}

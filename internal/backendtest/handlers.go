package backendtest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mr-fahad-03/grace-tailor/internal/aggregate"
	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

func newID() string {
	return uuid.NewString()
}

// Customers

func (s *Server) listCustomers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Customer, len(s.customers))
	for i, c := range s.customers {
		c.OrderCount = s.orderCountLocked(c.PhoneNumber)
		out[i] = c
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCustomerLocked(chi.URLParam(r, "id"))
	if c == nil {
		writeMessage(w, http.StatusNotFound, "Customer not found")
		return
	}
	copied := *c
	copied.OrderCount = s.orderCountLocked(copied.PhoneNumber)
	writeJSON(w, http.StatusOK, copied)
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	var in domain.CustomerInput
	if !decode(w, r, &in) {
		return
	}
	if in.Name == "" || in.PhoneNumber == "" {
		writeMessage(w, http.StatusBadRequest, "Name and phone number are required")
		return
	}
	c := domain.Customer{
		ID:                   newID(),
		Name:                 in.Name,
		PhoneNumber:          in.PhoneNumber,
		Email:                in.Email,
		Address:              in.Address,
		Notes:                in.Notes,
		Measurements:         in.Measurements,
		DetailedMeasurements: in.DetailedMeasurements,
		CreatedAt:            time.Now().UTC(),
	}
	s.mu.Lock()
	s.customers = append([]domain.Customer{c}, s.customers...)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var in domain.CustomerInput
	if !decode(w, r, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCustomerLocked(chi.URLParam(r, "id"))
	if c == nil {
		writeMessage(w, http.StatusNotFound, "Customer not found")
		return
	}
	c.Name = in.Name
	c.PhoneNumber = in.PhoneNumber
	c.Email = in.Email
	c.Address = in.Address
	c.Notes = in.Notes
	c.Measurements = in.Measurements
	writeJSON(w, http.StatusOK, *c)
}

func (s *Server) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.customers {
		if c.ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Customer removed"})
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Customer not found")
}

func (s *Server) addMeasurement(w http.ResponseWriter, r *http.Request) {
	var in domain.Measurement
	if !decode(w, r, &in) {
		return
	}
	if in.Date.IsZero() {
		in.Date = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCustomerLocked(chi.URLParam(r, "id"))
	if c == nil {
		writeMessage(w, http.StatusNotFound, "Customer not found")
		return
	}
	c.DetailedMeasurements = append(c.DetailedMeasurements, in)
	writeJSON(w, http.StatusOK, *c)
}

func (s *Server) findCustomerLocked(id string) *domain.Customer {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return &s.customers[i]
		}
	}
	return nil
}

func (s *Server) orderCountLocked(phone string) int {
	n := 0
	for _, o := range s.orders {
		if o.PhoneNumber == phone {
			n++
		}
	}
	return n
}

// Orders

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]domain.Order{}, s.orders...))
}

func (s *Server) recentOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recent := s.orders
	if len(recent) > 5 {
		recent = recent[:5]
	}
	writeJSON(w, http.StatusOK, append([]domain.Order{}, recent...))
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == chi.URLParam(r, "id") {
			writeJSON(w, http.StatusOK, o)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Order not found")
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.OrderInput
	if !decode(w, r, &in) {
		return
	}
	if in.CustomerName == "" || in.PhoneNumber == "" {
		writeMessage(w, http.StatusBadRequest, "Customer name and phone number are required")
		return
	}
	if in.Price < 0 {
		writeMessage(w, http.StatusBadRequest, "Price cannot be negative")
		return
	}
	status := in.Status
	if status == "" {
		status = domain.OrderPending
	}
	o := domain.Order{
		ID:           newID(),
		CustomerName: in.CustomerName,
		PhoneNumber:  in.PhoneNumber,
		Comment:      in.Comment,
		Price:        in.Price,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
	s.mu.Lock()
	s.orders = append([]domain.Order{o}, s.orders...)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, o)
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.OrderInput
	if !decode(w, r, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == chi.URLParam(r, "id") {
			o := &s.orders[i]
			o.CustomerName = in.CustomerName
			o.PhoneNumber = in.PhoneNumber
			o.Comment = in.Comment
			o.Price = in.Price
			o.Status = in.Status
			writeJSON(w, http.StatusOK, *o)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Order not found")
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Order removed"})
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Order not found")
}

// Staff

func (s *Server) listStaff(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]domain.StaffMember{}, s.staff...))
}

func (s *Server) getStaff(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.staff {
		if m.ID == chi.URLParam(r, "id") {
			writeJSON(w, http.StatusOK, m)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Staff member not found")
}

func (s *Server) createStaff(w http.ResponseWriter, r *http.Request) {
	var in domain.StaffInput
	if !decode(w, r, &in) {
		return
	}
	if in.Name == "" || in.PhoneNumber == "" || in.Position == "" {
		writeMessage(w, http.StatusBadRequest, "Name, phone number and position are required")
		return
	}
	m := domain.StaffMember{
		ID:          newID(),
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Address:     in.Address,
		Position:    in.Position,
		Salary:      in.Salary,
		JoiningDate: in.JoiningDate,
		Notes:       in.Notes,
	}
	if m.JoiningDate.IsZero() {
		m.JoiningDate = time.Now().UTC()
	}
	s.mu.Lock()
	s.staff = append([]domain.StaffMember{m}, s.staff...)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) updateStaff(w http.ResponseWriter, r *http.Request) {
	var in domain.StaffInput
	if !decode(w, r, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.staff {
		if s.staff[i].ID == chi.URLParam(r, "id") {
			m := &s.staff[i]
			m.Name = in.Name
			m.PhoneNumber = in.PhoneNumber
			m.Email = in.Email
			m.Address = in.Address
			m.Position = in.Position
			m.Salary = in.Salary
			if !in.JoiningDate.IsZero() {
				m.JoiningDate = in.JoiningDate
			}
			m.Notes = in.Notes
			writeJSON(w, http.StatusOK, *m)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Staff member not found")
}

// deleteStaff removes the member only; payments recorded against the member
// are intentionally left behind.
func (s *Server) deleteStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.staff {
		if m.ID == id {
			s.staff = append(s.staff[:i], s.staff[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Staff member removed"})
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Staff member not found")
}

// Staff payments

func (s *Server) listPaymentsByStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.StaffPayment, 0)
	for _, p := range s.payments {
		if p.StaffID == staffID {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createPayment(w http.ResponseWriter, r *http.Request) {
	var in domain.StaffPaymentInput
	if !decode(w, r, &in) {
		return
	}
	if in.StaffID == "" {
		writeMessage(w, http.StatusBadRequest, "Staff id is required")
		return
	}
	if in.Amount <= 0 {
		writeMessage(w, http.StatusBadRequest, "Amount must be positive")
		return
	}
	p := domain.StaffPayment{
		ID:          newID(),
		StaffID:     in.StaffID,
		Amount:      in.Amount,
		Date:        in.Date,
		HoursWorked: in.HoursWorked,
		Notes:       in.Notes,
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	s.mu.Lock()
	s.payments = append([]domain.StaffPayment{p}, s.payments...)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, p)
}

// Transactions

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]domain.Transaction{}, s.transactions...))
}

func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transactions {
		if t.ID == chi.URLParam(r, "id") {
			writeJSON(w, http.StatusOK, t)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Transaction not found")
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var in domain.TransactionInput
	if !decode(w, r, &in) {
		return
	}
	if in.Description == "" || in.Category == "" {
		writeMessage(w, http.StatusBadRequest, "Description and category are required")
		return
	}
	if in.Amount < 0 {
		writeMessage(w, http.StatusBadRequest, "Amount cannot be negative")
		return
	}
	t := domain.Transaction{
		ID:          newID(),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		Type:        in.Type,
		Category:    in.Category,
		Notes:       in.Notes,
	}
	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}
	s.mu.Lock()
	s.transactions = append([]domain.Transaction{t}, s.transactions...)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) updateTransaction(w http.ResponseWriter, r *http.Request) {
	var in domain.TransactionInput
	if !decode(w, r, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == chi.URLParam(r, "id") {
			t := &s.transactions[i]
			t.Description = in.Description
			t.Amount = in.Amount
			if !in.Date.IsZero() {
				t.Date = in.Date
			}
			t.Type = in.Type
			t.Category = in.Category
			t.Notes = in.Notes
			writeJSON(w, http.StatusOK, *t)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Transaction not found")
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.transactions {
		if t.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction removed"})
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Transaction not found")
}

// financialSummary reproduces the aggregation the client also implements as
// a fallback, so both ends agree by construction.
func (s *Server) financialSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, aggregate.Financial(s.transactions))
}

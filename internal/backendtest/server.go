// Package backendtest runs an in-process replica of the Grace Tailor REST
// backend for tests: the same routes, payload shapes and error bodies the
// deployed service exposes, backed by in-memory state.
package backendtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/mr-fahad-03/grace-tailor/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Credentials registered on every new server.
	AdminEmail    = "admin@gracetailor.pk"
	AdminPassword = "tailor-secret"
)

type Server struct {
	jwtSecret []byte

	mu           sync.Mutex
	admin        domain.User
	passwordHash []byte
	customers    []domain.Customer
	orders       []domain.Order
	staff        []domain.StaffMember
	payments     []domain.StaffPayment
	transactions []domain.Transaction

	http *httptest.Server
}

// New starts a server with a single registered admin user and empty
// collections. Callers must Close it.
func New() *Server {
	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s := &Server{
		jwtSecret:    []byte("backendtest-secret"),
		admin:        domain.User{ID: newID(), Name: "Admin", Email: AdminEmail},
		passwordHash: hash,
	}
	s.http = httptest.NewServer(s.router())
	return s
}

func (s *Server) Close() {
	s.http.Close()
}

// BaseURL is the API root, ready to hand to api.New.
func (s *Server) BaseURL() string {
	return s.http.URL + "/api"
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.login)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/auth/verify", s.verify)

			r.Get("/customers", s.listCustomers)
			r.Post("/customers", s.createCustomer)
			r.Get("/customers/{id}", s.getCustomer)
			r.Put("/customers/{id}", s.updateCustomer)
			r.Delete("/customers/{id}", s.deleteCustomer)
			r.Post("/customers/{id}/measurements", s.addMeasurement)

			r.Get("/orders", s.listOrders)
			r.Post("/orders", s.createOrder)
			r.Get("/orders/stats/recent", s.recentOrders)
			r.Get("/orders/{id}", s.getOrder)
			r.Put("/orders/{id}", s.updateOrder)
			r.Delete("/orders/{id}", s.deleteOrder)

			r.Get("/staff", s.listStaff)
			r.Post("/staff", s.createStaff)
			r.Get("/staff/{id}", s.getStaff)
			r.Put("/staff/{id}", s.updateStaff)
			r.Delete("/staff/{id}", s.deleteStaff)

			r.Get("/staff-payments/staff/{staffId}", s.listPaymentsByStaff)
			r.Post("/staff-payments", s.createPayment)

			r.Get("/transactions", s.listTransactions)
			r.Post("/transactions", s.createTransaction)
			r.Get("/transactions/stats/summary", s.financialSummary)
			r.Get("/transactions/{id}", s.getTransaction)
			r.Put("/transactions/{id}", s.updateTransaction)
			r.Delete("/transactions/{id}", s.deleteTransaction)
		})
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func decode(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid payload")
		return false
	}
	return true
}

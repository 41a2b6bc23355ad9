package domain

import "time"

// Form payloads. Validate tags enforce the required-field checks before a
// request is sent.

type CustomerInput struct {
	Name         string             `json:"name" validate:"required"`
	PhoneNumber  string             `json:"phoneNumber" validate:"required"`
	Email        string             `json:"email,omitempty" validate:"omitempty,email"`
	Address      string             `json:"address,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	Measurements *BasicMeasurements `json:"measurements,omitempty"`

	// Set only by the measurements form when it creates a customer and its
	// first detailed record in one call.
	DetailedMeasurements []Measurement `json:"detailedMeasurements,omitempty"`
}

type OrderInput struct {
	CustomerName string      `json:"customerName" validate:"required"`
	PhoneNumber  string      `json:"phoneNumber" validate:"required"`
	Comment      string      `json:"comment"`
	Price        float64     `json:"price" validate:"gte=0"`
	Status       OrderStatus `json:"status" validate:"required,oneof=pending in-progress completed delivered"`
}

type StaffInput struct {
	Name        string    `json:"name" validate:"required"`
	PhoneNumber string    `json:"phoneNumber" validate:"required"`
	Email       string    `json:"email,omitempty" validate:"omitempty,email"`
	Address     string    `json:"address,omitempty"`
	Position    string    `json:"position" validate:"required"`
	Salary      float64   `json:"salary" validate:"gte=0"`
	JoiningDate time.Time `json:"joiningDate"`
	Notes       string    `json:"notes,omitempty"`
}

type StaffPaymentInput struct {
	StaffID     string    `json:"staffId" validate:"required"`
	Amount      float64   `json:"amount" validate:"gt=0"`
	Date        time.Time `json:"date"`
	HoursWorked *float64  `json:"hoursWorked,omitempty" validate:"omitempty,gte=0"`
	Notes       string    `json:"notes,omitempty"`
}

type TransactionInput struct {
	Description string          `json:"description" validate:"required"`
	Amount      float64         `json:"amount" validate:"gte=0"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type" validate:"required,oneof=income expense"`
	Category    string          `json:"category" validate:"required"`
	Notes       string          `json:"notes,omitempty"`
}

// MeasurementInput is the measurements form payload for
// POST /customers/:id/measurements.
type MeasurementInput = Measurement

// DefaultOrderInput returns the create-form defaults for an order.
func DefaultOrderInput() OrderInput {
	return OrderInput{Status: OrderPending}
}

// DefaultTransactionInput returns the create-form defaults for a transaction:
// income type, dated midnight of the caller's calendar day.
func DefaultTransactionInput(now time.Time) TransactionInput {
	year, month, day := now.Date()
	return TransactionInput{Type: TransactionIncome, Date: time.Date(year, month, day, 0, 0, 0, 0, now.Location())}
}

// DefaultMeasurement returns the measurements form baseline: every binary
// style selector at "no" and the side pocket at "single".
func DefaultMeasurement() Measurement {
	return Measurement{
		FrontPocket: StyleNo,
		SidePocket:  PocketSingle,
		Patti:       StyleNo,
		Collar:      StyleNo,
		Bain:        StyleNo,
		Kuff:        StyleNo,
		Ghera:       StyleNo,
		Zip:         StyleNo,
	}
}

package domain

import "time"

// Enumerations
const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in-progress"
	OrderCompleted  OrderStatus = "completed"
	OrderDelivered  OrderStatus = "delivered"

	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"

	StyleYes StyleOption = "yes"
	StyleNo  StyleOption = "no"

	PocketSingle PocketStyle = "single"
	PocketDouble PocketStyle = "double"
)

type OrderStatus string
type TransactionType string
type StyleOption string
type PocketStyle string

// User is the authenticated identity returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BasicMeasurements is the legacy single measurement record stored directly
// on a customer. All values are free-text strings as entered.
type BasicMeasurements struct {
	Chest    string `json:"chest,omitempty"`
	Waist    string `json:"waist,omitempty"`
	Hips     string `json:"hips,omitempty"`
	Inseam   string `json:"inseam,omitempty"`
	Shoulder string `json:"shoulder,omitempty"`
	Sleeve   string `json:"sleeve,omitempty"`
	Neck     string `json:"neck,omitempty"`
}

// Measurement is one detailed measurement record. Hips, Inseam, Shoulder and
// Sleeve only appear on records synthesized from a legacy BasicMeasurements
// and are never collected by the measurements form.
type Measurement struct {
	MeasurementNumber string `json:"measurementNumber"`

	Length string `json:"length,omitempty"`
	Arm    string `json:"arm,omitempty"`
	Teera  string `json:"teera,omitempty"`
	Chest  string `json:"chest,omitempty"`
	Neck   string `json:"neck,omitempty"`
	Waist  string `json:"waist,omitempty"`
	Pant   string `json:"pant,omitempty"`
	Pancha string `json:"pancha,omitempty"`

	Hips     string `json:"hips,omitempty"`
	Inseam   string `json:"inseam,omitempty"`
	Shoulder string `json:"shoulder,omitempty"`
	Sleeve   string `json:"sleeve,omitempty"`

	FrontPocket StyleOption `json:"frontPocket"`
	SidePocket  PocketStyle `json:"sidePocket"`
	Patti       StyleOption `json:"patti"`
	Collar      StyleOption `json:"collar"`
	Bain        StyleOption `json:"bain"`
	Kuff        StyleOption `json:"kuff"`
	Ghera       StyleOption `json:"ghera"`
	Zip         StyleOption `json:"zip"`

	Notes string    `json:"notes,omitempty"`
	Date  time.Time `json:"date,omitempty"`
}

type Customer struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	PhoneNumber          string             `json:"phoneNumber"`
	Email                string             `json:"email,omitempty"`
	Address              string             `json:"address,omitempty"`
	Notes                string             `json:"notes,omitempty"`
	Measurements         *BasicMeasurements `json:"measurements,omitempty"`
	DetailedMeasurements []Measurement      `json:"detailedMeasurements,omitempty"`
	OrderCount           int                `json:"orderCount,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	PhoneNumber  string      `json:"phoneNumber"`
	Comment      string      `json:"comment"`
	Price        float64     `json:"price"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type StaffMember struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	Position    string    `json:"position"`
	Salary      float64   `json:"salary"`
	JoiningDate time.Time `json:"joiningDate"`
	Notes       string    `json:"notes,omitempty"`
}

// StaffPayment is immutable once created; the client exposes no update or
// delete operation for it, and deleting a staff member does not cascade.
type StaffPayment struct {
	ID          string    `json:"id"`
	StaffID     string    `json:"staffId"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	HoursWorked *float64  `json:"hoursWorked,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes,omitempty"`
}

// MonthlyBucket holds independent income and expense sums for one calendar
// month. Month is formatted as "2006-01" and buckets sort chronologically.
type MonthlyBucket struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// FinancialSummary matches the server's /transactions/stats/summary payload.
// The client can recompute it from a loaded transaction list, but screens
// prefer the server copy whenever one is available.
type FinancialSummary struct {
	TotalIncome  float64         `json:"totalIncome"`
	TotalExpense float64         `json:"totalExpense"`
	NetIncome    float64         `json:"netIncome"`
	MonthlyData  []MonthlyBucket `json:"monthlyData"`
}

// PaymentTotals is the per-staff payment rollup. There is no server endpoint
// for it, so it is always computed client-side. AverageRate is nil when no
// hours were recorded.
type PaymentTotals struct {
	TotalPaid   float64
	TotalHours  float64
	AverageRate *float64
}

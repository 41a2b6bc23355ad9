package form

import (
	"context"
	"strings"
	"time"

	"github.com/mr-fahad-03/grace-tailor/internal/aggregate"
	"github.com/mr-fahad-03/grace-tailor/internal/api"
	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

// MeasurementSubmission is the measurements screen payload. CustomerID
// selects between the two submit paths; CustomerName and PhoneNumber are
// only read on the new-customer path.
type MeasurementSubmission struct {
	CustomerID   string
	CustomerName string
	PhoneNumber  string
	Record       domain.Measurement
}

// MeasurementForm submits detailed measurement records. With a customer id
// the record is appended to that customer; without one a new customer is
// created in a single call, carrying a legacy summary derived from the
// record plus the record itself as the first detailed entry.
type MeasurementForm struct {
	Customers api.CustomersClient

	// Now stamps records and synthesizes blank measurement numbers.
	// Defaults to time.Now.
	Now func() time.Time
}

// Submit fills in a blank measurement number and date, then persists the
// record on whichever path the submission selects. It returns the customer
// as the server stored it.
func (f MeasurementForm) Submit(ctx context.Context, in MeasurementSubmission) (*domain.Customer, error) {
	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}
	rec := in.Record
	if strings.TrimSpace(rec.MeasurementNumber) == "" {
		rec.MeasurementNumber = aggregate.DefaultMeasurementNumber(now)
	}
	if rec.Date.IsZero() {
		rec.Date = now
	}

	if in.CustomerID != "" {
		return f.Customers.AddMeasurement(ctx, in.CustomerID, rec)
	}

	var missing []string
	if strings.TrimSpace(in.CustomerName) == "" {
		missing = append(missing, "CustomerName")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		missing = append(missing, "PhoneNumber")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	return f.Customers.Create(ctx, domain.CustomerInput{
		Name:        in.CustomerName,
		PhoneNumber: in.PhoneNumber,
		Measurements: &domain.BasicMeasurements{
			Chest: rec.Chest,
			Waist: rec.Waist,
			Neck:  rec.Neck,
		},
		DetailedMeasurements: []domain.Measurement{rec},
	})
}

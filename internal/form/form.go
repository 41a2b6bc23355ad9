package form

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/mr-fahad-03/grace-tailor/internal/api"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// ErrSubmitInFlight rejects a second Submit while one is already running;
// the submit control stays disabled until the first attempt settles.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// ValidationError is a structural check failure caught before any request
// is sent.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "required fields missing or invalid: " + strings.Join(e.Fields, ", ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Controller is the create/edit modal state machine. Submitting delegates to
// the list-view controller's Create or Update, so a success splices straight
// into the open screen's collection. A failure keeps the form open with its
// fields retained and the server's message surfaced.
type Controller[T, P any] struct {
	mu     sync.Mutex
	mode   Mode
	editID string
	fields P
	state  State
	errMsg string

	create func(ctx context.Context, in P) (*T, error)
	update func(ctx context.Context, id string, in P) (*T, error)
}

// NewCreate opens a form at the type-specific defaults.
func NewCreate[T, P any](defaults P, create func(ctx context.Context, in P) (*T, error)) *Controller[T, P] {
	return &Controller[T, P]{
		mode:   ModeCreate,
		fields: defaults,
		state:  StateIdle,
		create: create,
	}
}

// NewEdit opens a form prefilled from an existing entity's fields, retaining
// its id for the update call.
func NewEdit[T, P any](id string, prefilled P, update func(ctx context.Context, id string, in P) (*T, error)) *Controller[T, P] {
	return &Controller[T, P]{
		mode:   ModeEdit,
		editID: id,
		fields: prefilled,
		state:  StateIdle,
		update: update,
	}
}

func (f *Controller[T, P]) Mode() Mode {
	return f.mode
}

func (f *Controller[T, P]) Fields() P {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Controller[T, P]) SetFields(fields P) {
	f.mu.Lock()
	f.fields = fields
	f.mu.Unlock()
}

func (f *Controller[T, P]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Controller[T, P]) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Submit validates the fields and persists them. On success the caller
// closes the form and receives the persisted entity; on failure the form
// stays open with the fields untouched.
func (f *Controller[T, P]) Submit(ctx context.Context) (*T, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	fields := f.fields
	if err := checkFields(fields); err != nil {
		f.errMsg = err.Error()
		f.mu.Unlock()
		return nil, err
	}
	f.state = StateSubmitting
	f.errMsg = ""
	f.mu.Unlock()

	var saved *T
	var err error
	if f.mode == ModeEdit {
		saved, err = f.update(ctx, f.editID, fields)
	} else {
		saved, err = f.create(ctx, fields)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
	if err != nil {
		f.errMsg = api.ErrorMessage(err, "Failed to save. Please try again.")
		return nil, err
	}
	return saved, nil
}

// Cancel discards the form without any network call.
func (f *Controller[T, P]) Cancel() {
	f.mu.Lock()
	f.state = StateIdle
	f.errMsg = ""
	f.mu.Unlock()
}

func checkFields(fields any) error {
	err := validate.Struct(fields)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}
	names := make([]string, 0, len(invalid))
	for _, fe := range invalid {
		names = append(names, fe.Field())
	}
	return &ValidationError{Fields: names}
}

// ParseNumber converts a numeric text input, keeping blank distinct from
// zero: "" yields nil, "0" yields a pointer to zero.
func ParseNumber(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

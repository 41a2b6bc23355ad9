package listview

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// ErrOperationUnavailable reports a call to an operation the screen does not
// offer (payments have no update or delete).
var ErrOperationUnavailable = errors.New("operation not available for this resource")

// Source binds a controller to one resource's API operations. Nil operations
// are simply unavailable on that screen (the payments screen has no update
// or delete).
type Source[T, P any] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, in P) (*T, error)
	Update func(ctx context.Context, id string, in P) (*T, error)
	Remove func(ctx context.Context, id string) error
}

// Controller owns the in-memory ordered collection behind one resource
// screen. Mutations splice the server's response into the collection in
// place instead of re-fetching the whole list; a failed call never touches
// the collection.
type Controller[T, P any] struct {
	resource string
	noun     string
	src      Source[T, P]
	id       func(T) string
	match    func(T, string) bool
	confirm  func(prompt string) bool
	logger   *slog.Logger

	mu         sync.Mutex
	items      []T
	status     Status
	errMsg     string
	filterText string
	onChange   func()

	// seq orders list-replacing responses against local mutations: a
	// Refresh result is discarded when anything newer has run since it
	// started. refreshing counts in-flight refreshes so a discarded one
	// can hand status back to ready when nothing newer will.
	seq        uint64
	refreshing int
}

func New[T, P any](resource, noun string, src Source[T, P], id func(T) string, match func(T, string) bool, confirm func(string) bool, logger *slog.Logger) *Controller[T, P] {
	if logger == nil {
		logger = slog.Default()
	}
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Controller[T, P]{
		resource: resource,
		noun:     noun,
		src:      src,
		id:       id,
		match:    match,
		confirm:  confirm,
		logger:   logger,
		status:   StatusLoading,
	}
}

// Refresh replaces the collection wholesale from the server. On failure the
// previous items stay visible under an error banner; a blank screen is never
// preferred over stale data.
func (c *Controller[T, P]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.refreshing++
	c.status = StatusLoading
	c.mu.Unlock()

	items, err := c.src.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshing--
	if seq != c.seq {
		// A newer refresh or a local splice ran while this request was in
		// flight; its snapshot is already out of date.
		c.logger.Debug("discarding superseded refresh", "resource", c.resource)
		if c.refreshing == 0 && c.status == StatusLoading {
			c.status = StatusReady
		}
		return nil
	}
	if err != nil {
		c.status = StatusError
		c.errMsg = "Failed to load " + c.resource + ". Please try again."
		c.logger.Error("refresh failed", "resource", c.resource, "err", err)
		return err
	}
	c.items = items
	c.status = StatusReady
	c.errMsg = ""
	return nil
}

// SetOnChange registers a hook invoked after every successful mutation has
// been spliced in. The income screen uses it to re-fetch the server summary.
func (c *Controller[T, P]) SetOnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Controller[T, P]) notifyChange() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Create persists a new entity and prepends the server's copy to the
// collection.
func (c *Controller[T, P]) Create(ctx context.Context, in P) (*T, error) {
	if c.src.Create == nil {
		return nil, ErrOperationUnavailable
	}
	saved, err := c.src.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.seq++
	c.items = append([]T{*saved}, c.items...)
	c.mu.Unlock()
	c.notifyChange()
	return saved, nil
}

// Update persists changes to an existing entity and replaces the matching
// element in place, preserving its position.
func (c *Controller[T, P]) Update(ctx context.Context, id string, in P) (*T, error) {
	if c.src.Update == nil {
		return nil, ErrOperationUnavailable
	}
	saved, err := c.src.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.seq++
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = *saved
			break
		}
	}
	c.mu.Unlock()
	c.notifyChange()
	return saved, nil
}

// Delete asks for confirmation, then removes the entity on the server and
// from the collection. It reports false when the user declined; a server
// failure leaves the collection unchanged.
func (c *Controller[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	if c.src.Remove == nil {
		return false, ErrOperationUnavailable
	}
	if !c.confirm("Are you sure you want to delete this " + c.noun + "?") {
		return false, nil
	}
	if err := c.src.Remove(ctx, id); err != nil {
		c.logger.Error("delete failed", "resource", c.resource, "id", id, "err", err)
		return false, err
	}
	c.mu.Lock()
	c.seq++
	kept := c.items[:0]
	for _, item := range c.items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.mu.Unlock()
	c.notifyChange()
	return true, nil
}

// SetFilter updates the free-text filter applied by Filtered.
func (c *Controller[T, P]) SetFilter(text string) {
	c.mu.Lock()
	c.filterText = text
	c.mu.Unlock()
}

// Filtered returns the items matching the current filter text,
// case-insensitively, in collection order. An empty filter matches
// everything.
func (c *Controller[T, P]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	needle := strings.ToLower(strings.TrimSpace(c.filterText))
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if needle == "" || c.match(item, needle) {
			out = append(out, item)
		}
	}
	return out
}

// Items returns the full collection in order.
func (c *Controller[T, P]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller[T, P]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller[T, P]) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

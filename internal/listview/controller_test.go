package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string
	Text string
}

// fakeSource is an in-memory stand-in for a resource client.
type fakeSource struct {
	mu      sync.Mutex
	nextID  int
	listing []note
	failAll bool

	// listGate, when set, blocks List until the channel closes;
	// listStarted reports that List has been entered.
	listGate    chan struct{}
	listStarted chan struct{}
}

func (f *fakeSource) source() Source[note, note] {
	return Source[note, note]{
		List:   f.list,
		Create: f.create,
		Update: f.update,
		Remove: f.remove,
	}
}

// list snapshots the collection up front, then optionally stalls before
// responding, like a slow server answering from its state at request time.
func (f *fakeSource) list(ctx context.Context) ([]note, error) {
	f.mu.Lock()
	if f.failAll {
		f.mu.Unlock()
		return nil, errors.New("boom")
	}
	out := make([]note, len(f.listing))
	copy(out, f.listing)
	gate := f.listGate
	started := f.listStarted
	f.mu.Unlock()
	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	return out, nil
}

func (f *fakeSource) create(ctx context.Context, in note) (*note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("boom")
	}
	f.nextID++
	in.ID = fmt.Sprintf("n%d", f.nextID)
	f.listing = append([]note{in}, f.listing...)
	return &in, nil
}

func (f *fakeSource) update(ctx context.Context, id string, in note) (*note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("boom")
	}
	for i := range f.listing {
		if f.listing[i].ID == id {
			in.ID = id
			f.listing[i] = in
			return &in, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeSource) remove(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("boom")
	}
	for i := range f.listing {
		if f.listing[i].ID == id {
			f.listing = append(f.listing[:i], f.listing[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func newController(f *fakeSource, confirm func(string) bool) *Controller[note, note] {
	return New("notes", "note", f.source(),
		func(n note) string { return n.ID },
		func(n note, needle string) bool { return contains(n.Text, needle) },
		confirm, nil)
}

func ids(items []note) []string {
	out := make([]string, len(items))
	for i, n := range items {
		out[i] = n.ID
	}
	return out
}

func TestRefreshReplacesItems(t *testing.T) {
	f := &fakeSource{listing: []note{{ID: "n2", Text: "two"}, {ID: "n1", Text: "one"}}}
	c := newController(f, nil)

	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, []string{"n2", "n1"}, ids(c.Items()))
	assert.Equal(t, StatusReady, c.Status())
	assert.Empty(t, c.ErrorMessage())
}

func TestRefreshFailureKeepsStaleItems(t *testing.T) {
	f := &fakeSource{listing: []note{{ID: "n1", Text: "one"}}}
	c := newController(f, nil)
	require.NoError(t, c.Refresh(context.Background()))

	f.mu.Lock()
	f.failAll = true
	f.mu.Unlock()

	err := c.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, StatusError, c.Status())
	assert.Equal(t, "Failed to load notes. Please try again.", c.ErrorMessage())
	assert.Equal(t, []string{"n1"}, ids(c.Items()), "stale items stay visible")
}

func TestCreatePrependsServerCopy(t *testing.T) {
	f := &fakeSource{listing: []note{{ID: "n1", Text: "one"}}}
	c := newController(f, nil)
	require.NoError(t, c.Refresh(context.Background()))

	saved, err := c.Create(context.Background(), note{Text: "two"})

	require.NoError(t, err)
	assert.Equal(t, []string{saved.ID, "n1"}, ids(c.Items()))
}

func TestUpdateReplacesInPlace(t *testing.T) {
	f := &fakeSource{listing: []note{{ID: "n3", Text: "c"}, {ID: "n2", Text: "b"}, {ID: "n1", Text: "a"}}}
	c := newController(f, nil)
	require.NoError(t, c.Refresh(context.Background()))

	_, err := c.Update(context.Background(), "n2", note{Text: "B"})

	require.NoError(t, err)
	items := c.Items()
	assert.Equal(t, []string{"n3", "n2", "n1"}, ids(items), "position preserved")
	assert.Equal(t, "B", items[1].Text)
}

func TestDeleteRemovesByID(t *testing.T) {
	f := &fakeSource{listing: []note{{ID: "n2", Text: "b"}, {ID: "n1", Text: "a"}}}
	c := newController(f, nil)
	require.NoError(t, c.Refresh(context.Background()))

	deleted, err := c.Delete(context.Background(), "n2")

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"n1"}, ids(c.Items()))
}

func TestDeleteDeclinedSkipsServerCall(t *testing.T) {
	f := &fakeSource{listing: []note{{ID: "n1", Text: "a"}}}
	c := newController(f, func(string) bool { return false })
	require.NoError(t, c.Refresh(context.Background()))

	deleted, err := c.Delete(context.Background(), "n1")

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, []string{"n1"}, ids(c.Items()))
	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Len(t, f.listing, 1, "server never called")
}

func TestFailedMutationsAreNoOps(t *testing.T) {
	f := &fakeSource{listing: []note{{ID: "n1", Text: "a"}}}
	c := newController(f, nil)
	require.NoError(t, c.Refresh(context.Background()))

	f.mu.Lock()
	f.failAll = true
	f.mu.Unlock()

	_, err := c.Create(context.Background(), note{Text: "x"})
	assert.Error(t, err)
	_, err = c.Update(context.Background(), "n1", note{Text: "x"})
	assert.Error(t, err)
	_, err = c.Delete(context.Background(), "n1")
	assert.Error(t, err)

	assert.Equal(t, []string{"n1"}, ids(c.Items()), "failed operations must not touch items")
}

func TestUnboundOperationsReturnErrorNotPanic(t *testing.T) {
	f := &fakeSource{listing: []note{{ID: "n1", Text: "a"}}}
	src := Source[note, note]{List: f.list, Create: f.create}
	c := New("payments", "payment", src,
		func(n note) string { return n.ID },
		func(n note, needle string) bool { return contains(n.Text, needle) },
		nil, nil)
	require.NoError(t, c.Refresh(context.Background()))

	_, err := c.Update(context.Background(), "n1", note{Text: "x"})
	assert.ErrorIs(t, err, ErrOperationUnavailable)

	deleted, err := c.Delete(context.Background(), "n1")
	assert.ErrorIs(t, err, ErrOperationUnavailable)
	assert.False(t, deleted)
	assert.Equal(t, []string{"n1"}, ids(c.Items()))
}

func TestOnChangeFiresAfterEachMutation(t *testing.T) {
	f := &fakeSource{listing: []note{{ID: "n1", Text: "a"}}}
	c := newController(f, nil)
	require.NoError(t, c.Refresh(context.Background()))

	changes := 0
	c.SetOnChange(func() { changes++ })

	saved, err := c.Create(context.Background(), note{Text: "b"})
	require.NoError(t, err)
	_, err = c.Update(context.Background(), saved.ID, note{Text: "B"})
	require.NoError(t, err)
	_, err = c.Delete(context.Background(), saved.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, changes)

	f.mu.Lock()
	f.failAll = true
	f.mu.Unlock()
	_, _ = c.Create(context.Background(), note{Text: "c"})
	assert.Equal(t, 3, changes, "failed mutations do not fire the hook")
}

func TestFilteredEmptyFilterReturnsAllInOrder(t *testing.T) {
	f := &fakeSource{listing: []note{{ID: "n2", Text: "beta"}, {ID: "n1", Text: "alpha"}}}
	c := newController(f, nil)
	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, c.Items(), c.Filtered())
}

func TestFilteredCaseInsensitiveAndIdempotent(t *testing.T) {
	f := &fakeSource{listing: []note{
		{ID: "n3", Text: "Wedding suit"},
		{ID: "n2", Text: "alteration"},
		{ID: "n1", Text: "Suit trousers"},
	}}
	c := newController(f, nil)
	require.NoError(t, c.Refresh(context.Background()))

	c.SetFilter("SUIT")
	first := c.Filtered()
	second := c.Filtered()

	assert.Equal(t, []string{"n3", "n1"}, ids(first), "order preserved")
	assert.Equal(t, first, second, "re-application yields the same view")
}

func TestStaleRefreshDoesNotClobberSplice(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{})
	f := &fakeSource{listing: []note{{ID: "n1", Text: "a"}}, listGate: gate, listStarted: started}
	c := newController(f, nil)

	done := make(chan error, 1)
	go func() {
		done <- c.Refresh(context.Background())
	}()
	<-started

	// Splice while the refresh is still in flight.
	f.mu.Lock()
	f.listGate = nil
	f.listStarted = nil
	f.mu.Unlock()
	saved, err := c.Create(context.Background(), note{Text: "fresh"})
	require.NoError(t, err)

	close(gate)
	require.NoError(t, <-done)

	assert.Contains(t, ids(c.Items()), saved.ID, "stale refresh result must be discarded")
	assert.Equal(t, StatusReady, c.Status())
}

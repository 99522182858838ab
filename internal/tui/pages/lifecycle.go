// Package pages implements the TUI pages. Each page fetches its own data
// when mounted and keeps it in local view state.
package pages

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Ticket identifies one request issued by a page.
type Ticket struct {
	Kind       string
	Owner      string
	Generation uint64
	Seq        uint64
}

// Result carries the outcome of a request back to the page that issued it.
type Result[T any] struct {
	Value  T
	Err    error
	Ticket Ticket
}

// Lifecycle binds a page's requests to its time on screen. Unmount cancels
// in-flight requests, and completions that belong to an earlier mount or
// that were superseded by a newer request of the same kind are rejected by
// Accept.
type Lifecycle struct {
	ctx        context.Context
	cancel     context.CancelFunc
	seq        map[string]uint64
	owner      string
	generation uint64
}

// NewLifecycle creates an unmounted lifecycle for owner.
func NewLifecycle(owner string) *Lifecycle {
	return &Lifecycle{owner: owner, seq: map[string]uint64{}}
}

// Mount starts a new generation whose requests derive from parent.
func (l *Lifecycle) Mount(parent context.Context) {
	l.Unmount()
	l.generation++
	l.ctx, l.cancel = context.WithCancel(parent)
	l.seq = map[string]uint64{}
}

// Unmount cancels in-flight requests and invalidates their completions.
func (l *Lifecycle) Unmount() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	l.cancel = nil
	l.ctx = nil
	l.generation++
}

// Mounted reports whether the page is on screen.
func (l *Lifecycle) Mounted() bool {
	return l.cancel != nil
}

// Context returns the context of the current generation.
func (l *Lifecycle) Context() context.Context {
	if l.ctx == nil {
		return context.Background()
	}
	return l.ctx
}

// Begin issues a ticket for a new request of the given kind.
func (l *Lifecycle) Begin(kind string) Ticket {
	l.seq[kind]++
	return Ticket{
		Kind:       kind,
		Owner:      l.owner,
		Generation: l.generation,
		Seq:        l.seq[kind],
	}
}

// Supersede invalidates in-flight requests of the given kinds without
// issuing new ones.
func (l *Lifecycle) Supersede(kinds ...string) {
	for _, kind := range kinds {
		l.seq[kind]++
	}
}

// Accept reports whether a completion for t should update the page.
func (l *Lifecycle) Accept(t Ticket) bool {
	return l.Mounted() &&
		t.Owner == l.owner &&
		t.Generation == l.generation &&
		t.Seq == l.seq[t.Kind]
}

// Fetch runs fn in a command under the lifecycle's current context.
func Fetch[T any](l *Lifecycle, kind string, fn func(ctx context.Context) (T, error)) tea.Cmd {
	ticket := l.Begin(kind)
	ctx := l.Context()
	return func() tea.Msg {
		v, err := fn(ctx)
		return Result[T]{Ticket: ticket, Value: v, Err: err}
	}
}

package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_AcceptsCurrentRequest(t *testing.T) {
	l := NewLifecycle(viewmodel.RouteInventory.Path())
	l.Mount(context.Background())

	ticket := l.Begin("load")
	assert.True(t, l.Accept(ticket))
}

func TestLifecycle_RejectsSupersededRequest(t *testing.T) {
	l := NewLifecycle(viewmodel.RouteHistory.Path())
	l.Mount(context.Background())

	first := l.Begin("history")
	second := l.Begin("history")
	other := l.Begin("summary")

	assert.False(t, l.Accept(first))
	assert.True(t, l.Accept(second))
	assert.True(t, l.Accept(other))
}

func TestLifecycle_Supersede(t *testing.T) {
	l := NewLifecycle(viewmodel.RouteInventory.Path())
	l.Mount(context.Background())

	load := l.Begin("inventory")
	update := l.Begin("update")
	l.Supersede("inventory")

	assert.False(t, l.Accept(load))
	assert.True(t, l.Accept(update))
	assert.True(t, l.Accept(l.Begin("inventory")))
}

func TestLifecycle_UnmountCancelsAndRejects(t *testing.T) {
	l := NewLifecycle(viewmodel.RouteBills.Path())
	l.Mount(context.Background())

	ctx := l.Context()
	ticket := l.Begin("bills")
	l.Unmount()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, l.Mounted())
	assert.False(t, l.Accept(ticket))

	l.Mount(context.Background())
	assert.False(t, l.Accept(ticket), "completion from a previous mount")
	assert.True(t, l.Accept(l.Begin("bills")))
}

func TestLifecycle_RejectsOtherOwner(t *testing.T) {
	bills := NewLifecycle(viewmodel.RouteBills.Path())
	dash := NewLifecycle(viewmodel.RouteDashboard.Path())
	bills.Mount(context.Background())
	dash.Mount(context.Background())

	assert.False(t, dash.Accept(bills.Begin("bills")))
}

func TestLifecycle_UnmountWithoutMount(t *testing.T) {
	l := NewLifecycle(viewmodel.RouteStatus.Path())
	l.Unmount()
	assert.False(t, l.Mounted())
	assert.NoError(t, l.Context().Err())
}

func TestFetch(t *testing.T) {
	l := NewLifecycle(viewmodel.RouteStatus.Path())
	l.Mount(context.Background())

	wantErr := errors.New("boom")
	cmd := Fetch(l, "status", func(ctx context.Context) (int, error) {
		require.NoError(t, ctx.Err())
		return 42, wantErr
	})

	msg, ok := cmd().(Result[int])
	require.True(t, ok)
	assert.Equal(t, 42, msg.Value)
	assert.ErrorIs(t, msg.Err, wantErr)
	assert.True(t, l.Accept(msg.Ticket))
}

func TestFetch_CancelledOnUnmount(t *testing.T) {
	l := NewLifecycle(viewmodel.RouteStatus.Path())
	l.Mount(context.Background())

	cmd := Fetch(l, "status", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, ctx.Err()
	})
	l.Unmount()

	msg := cmd().(Result[struct{}])
	assert.ErrorIs(t, msg.Err, context.Canceled)
	assert.False(t, l.Accept(msg.Ticket))
}

package tests

import (
	"testing"

	"dineout/internal/cart"
	"dineout/internal/domain"

	"github.com/stretchr/testify/assert"
)

var (
	tzatziki = domain.MenuItem{ID: "1", Name: "Tzatziki", Price: 4.50, IsVegetarian: true}
	moussaka = domain.MenuItem{ID: "5", Name: "Moussaka", Price: 12.80}
)

func TestCart_SetQuantity(t *testing.T) {
	c := cart.New()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())

	c.SetQuantity(tzatziki, 2)
	assert.Equal(t, 2, c.TotalItems())
	assert.InDelta(t, 9.00, c.TotalPrice(), 1e-9)

	c.SetQuantity(tzatziki, 0)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Quantity("1"))
}

func TestCart_NegativeQuantityRemoves(t *testing.T) {
	c := cart.New()
	c.SetQuantity(tzatziki, 3)
	c.SetQuantity(tzatziki, -5)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
}

func TestCart_TotalPrice(t *testing.T) {
	c := cart.New()
	c.SetQuantity(tzatziki, 2)
	c.SetQuantity(moussaka, 1)

	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 21.80, c.TotalPrice(), 1e-9)
}

func TestCart_AddIncrements(t *testing.T) {
	c := cart.New()
	c.Add(tzatziki, 1)
	c.Add(tzatziki, 2)

	assert.Equal(t, 3, c.Quantity("1"))
	assert.Equal(t, 1, c.Len())
}

func TestCart_LinesPreserveInsertionOrder(t *testing.T) {
	c := cart.New()
	c.SetQuantity(moussaka, 1)
	c.SetQuantity(tzatziki, 2)
	c.SetQuantity(moussaka, 3) // overwrite keeps position

	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "5", lines[0].Item.ID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "1", lines[1].Item.ID)
}

func TestCart_SnapshotIsIndependent(t *testing.T) {
	c := cart.New()
	c.SetQuantity(tzatziki, 2)

	snapshot := c.Snapshot()
	c.SetQuantity(tzatziki, 7)
	c.SetQuantity(moussaka, 1)

	assert.Len(t, snapshot, 1)
	assert.Equal(t, 2, snapshot[0].Quantity)
	assert.InDelta(t, 4.50, snapshot[0].Price, 1e-9)
}

func TestCart_Clear(t *testing.T) {
	c := cart.New()
	c.SetQuantity(tzatziki, 2)
	c.SetQuantity(moussaka, 1)
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())
	assert.Empty(t, c.Lines())
}

func TestSession_StateMachine(t *testing.T) {
	s := cart.NewSession()
	assert.Equal(t, cart.StateBuilding, s.State())

	// empty cart cannot enter checkout
	_, err := s.BeginCheckout()
	assert.ErrorIs(t, err, cart.ErrEmptyCart)

	assert.NoError(t, s.Add("1", tzatziki, 2))
	assert.Equal(t, "1", s.RestaurantID())

	snapshot, err := s.BeginCheckout()
	assert.NoError(t, err)
	assert.Len(t, snapshot, 1)
	assert.Equal(t, cart.StatePlacingOrder, s.State())

	// cart is frozen while the order is being placed
	assert.ErrorIs(t, s.Add("1", moussaka, 1), cart.ErrCartLocked)

	// no double checkout from PlacingOrder
	_, err = s.BeginCheckout()
	assert.ErrorIs(t, err, cart.ErrInvalidState)

	assert.NoError(t, s.Confirm())
	assert.Equal(t, cart.StateConfirmed, s.State())
	assert.True(t, s.IsEmpty())

	// shopping again after confirmation starts a fresh build
	assert.NoError(t, s.Add("2", moussaka, 1))
	assert.Equal(t, cart.StateBuilding, s.State())
	assert.Equal(t, "2", s.RestaurantID())
}

func TestSession_AbortKeepsCart(t *testing.T) {
	s := cart.NewSession()
	assert.NoError(t, s.Add("1", tzatziki, 2))

	_, err := s.BeginCheckout()
	assert.NoError(t, err)

	s.Abort()
	assert.Equal(t, cart.StateBuilding, s.State())
	assert.Equal(t, 2, s.TotalItems())
}

func TestSession_SingleRestaurant(t *testing.T) {
	s := cart.NewSession()
	assert.NoError(t, s.Add("1", tzatziki, 1))
	assert.ErrorIs(t, s.Add("2", moussaka, 1), cart.ErrWrongRestaurant)

	// removing the last item releases the binding
	assert.NoError(t, s.Remove("1"))
	assert.NoError(t, s.Add("2", moussaka, 1))
}

func TestSessions_IsolatedInstances(t *testing.T) {
	registry := cart.NewSessions()

	a := registry.Get("a")
	b := registry.Get("b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, registry.Get("a"))

	assert.NoError(t, a.Add("1", tzatziki, 2))
	assert.True(t, b.IsEmpty())
}

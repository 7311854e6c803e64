package cart

import (
	"errors"
	"sync"

	"dineout/internal/domain"
)

// State is the explicit checkout state machine that replaces the original
// ad hoc "order placed" flags.
type State string

const (
	StateBuilding     State = "building"
	StatePlacingOrder State = "placing_order"
	StateConfirmed    State = "confirmed"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrCartLocked      = errors.New("cart is locked while an order is being placed")
	ErrInvalidState    = errors.New("invalid checkout state transition")
	ErrWrongRestaurant = errors.New("cart already holds items from another restaurant")
)

// Session owns one cart and its checkout state. It serves a single
// in-progress order against a single restaurant; the restaurant binding is
// set by the first item added and released by Reset.
type Session struct {
	mu           sync.Mutex
	cart         *Cart
	state        State
	restaurantID string
}

func NewSession() *Session {
	return &Session{cart: New(), state: StateBuilding}
}

// SetQuantity mutates the cart. Mutations are allowed only while building,
// so an in-flight checkout keeps a stable view of the cart.
func (s *Session) SetQuantity(restaurantID string, item domain.MenuItem, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkMutable(restaurantID); err != nil {
		return err
	}
	s.cart.SetQuantity(item, quantity)
	s.rebind(restaurantID)
	return nil
}

// Add increments the quantity for an item, inserting it if absent.
func (s *Session) Add(restaurantID string, item domain.MenuItem, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkMutable(restaurantID); err != nil {
		return err
	}
	s.cart.Add(item, quantity)
	s.rebind(restaurantID)
	return nil
}

func (s *Session) Remove(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StatePlacingOrder {
		return ErrCartLocked
	}
	if s.state == StateConfirmed {
		s.state = StateBuilding
	}
	s.cart.Remove(itemID)
	if s.cart.IsEmpty() {
		s.restaurantID = ""
	}
	return nil
}

func (s *Session) checkMutable(restaurantID string) error {
	if s.state == StatePlacingOrder {
		return ErrCartLocked
	}
	if s.state == StateConfirmed {
		// shopping again after a confirmed order starts a fresh build
		s.state = StateBuilding
	}
	if s.restaurantID != "" && s.restaurantID != restaurantID {
		return ErrWrongRestaurant
	}
	return nil
}

// rebind keeps the restaurant binding in sync with cart contents; must be
// called with the lock held after a mutation.
func (s *Session) rebind(restaurantID string) {
	if s.cart.IsEmpty() {
		s.restaurantID = ""
		return
	}
	s.restaurantID = restaurantID
}

// BeginCheckout moves Building -> PlacingOrder and returns a frozen snapshot
// of the cart for order creation. An empty cart cannot enter checkout.
func (s *Session) BeginCheckout() ([]domain.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateBuilding {
		return nil, ErrInvalidState
	}
	if s.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	s.state = StatePlacingOrder
	return s.cart.Snapshot(), nil
}

// Confirm moves PlacingOrder -> Confirmed and clears the cart for the next
// order.
func (s *Session) Confirm() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlacingOrder {
		return ErrInvalidState
	}
	s.state = StateConfirmed
	s.cart.Clear()
	s.restaurantID = ""
	return nil
}

// Reset returns the session to Building from any state, clearing the cart.
// Used both after a confirmed order and to abandon a failed checkout.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateBuilding
	s.cart.Clear()
	s.restaurantID = ""
}

// Abort rolls PlacingOrder back to Building without touching the cart, so a
// failed order creation loses nothing.
func (s *Session) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StatePlacingOrder {
		s.state = StateBuilding
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) RestaurantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurantID
}

func (s *Session) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Session) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

func (s *Session) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

func (s *Session) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

// Sessions hands out one Session per session id. The registry lock covers
// the map only; each session carries its own lock because HTTP serving
// breaks the one-writer assumption a single UI session would give.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it on first use.
func (r *Sessions) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		s = NewSession()
		r.sessions[id] = s
	}
	return s
}

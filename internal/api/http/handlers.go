package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"dineout/internal/cart"
	"dineout/internal/catalog"
	"dineout/internal/domain"
	"dineout/internal/geo"
	"dineout/internal/service"
	"dineout/internal/storage"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"
)

type PopularityReader interface {
	TopItems(ctx context.Context, restaurantID string, limit int) ([]storage.ItemCount, error)
}

type Handler struct {
	Catalog    *catalog.Catalog
	Sessions   *cart.Sessions
	Orders     service.OrderServiceInterface
	Popularity PopularityReader
	Resolver   geo.Resolver
}

func NewHandler(cat *catalog.Catalog, sessions *cart.Sessions, orders service.OrderServiceInterface, popularity PopularityReader, resolver geo.Resolver) *Handler {
	return &Handler{
		Catalog:    cat,
		Sessions:   sessions,
		Orders:     orders,
		Popularity: popularity,
		Resolver:   resolver,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/status", h.getRestaurantStatus).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu/{categoryId}", h.getMenuCategory).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/popular", h.getPopularItems).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items", h.setCartItemQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/address/resolve", h.resolveAddress).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "dineout",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.List())
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := h.Catalog.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getRestaurantStatus(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := h.Catalog.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":                 restaurant.ID,
		"open_now":           restaurant.OpenNow(),
		"average_price":      round2(restaurant.AveragePrice()),
		"vegetarian_options": len(restaurant.VegetarianOptions()),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := h.Catalog.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, restaurant.Menu)
}

func (h *Handler) getMenuCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurant, ok := h.Catalog.Get(vars["id"])
	if !ok {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	category, ok := restaurant.CategoryByID(vars["categoryId"])
	if !ok {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) getPopularItems(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]
	if _, ok := h.Catalog.Get(restaurantID); !ok {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if h.Popularity == nil {
		http.Error(w, "Popularity tracking disabled", http.StatusServiceUnavailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	counts, err := h.Popularity.TopItems(r.Context(), restaurantID, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

type cartItemRequest struct {
	RestaurantID string `json:"restaurant_id"`
	ItemID       string `json:"item_id"`
	Quantity     int    `json:"quantity"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	h.mutateCartItem(w, r, func(s *cart.Session, restaurantID string, item domain.MenuItem, quantity int) error {
		return s.Add(restaurantID, item, quantity)
	})
}

func (h *Handler) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	h.mutateCartItem(w, r, func(s *cart.Session, restaurantID string, item domain.MenuItem, quantity int) error {
		return s.SetQuantity(restaurantID, item, quantity)
	})
}

func (h *Handler) mutateCartItem(w http.ResponseWriter, r *http.Request, apply func(*cart.Session, string, domain.MenuItem, int) error) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, ok := h.Catalog.Item(req.RestaurantID, req.ItemID)
	if !ok {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}

	session := h.session(r)
	if err := apply(session, req.RestaurantID, item, req.Quantity); err != nil {
		switch {
		case errors.Is(err, cart.ErrCartLocked), errors.Is(err, cart.ErrWrongRestaurant):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	h.writeCart(w, http.StatusOK, session)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	if err := session.Remove(mux.Vars(r)["itemId"]); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	h.writeCart(w, http.StatusOK, session)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, http.StatusOK, h.session(r))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	session.Reset()
	h.writeCart(w, http.StatusOK, session)
}

type checkoutRequest struct {
	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session := h.session(r)
	restaurantID := session.RestaurantID()
	restaurantName := ""
	if restaurant, ok := h.Catalog.Get(restaurantID); ok {
		restaurantName = restaurant.Name
	}

	snapshot, err := session.BeginCheckout()
	if err != nil {
		// both an empty cart and a checkout already in flight are caller
		// state conflicts
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	order, err := h.Orders.Checkout(r.Context(), service.CheckoutRequest{
		RestaurantID:    restaurantID,
		RestaurantName:  restaurantName,
		Items:           snapshot,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		session.Abort()
		if errors.Is(err, service.ErrEmptyCart) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := session.Confirm(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, orderResponse(order))
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.Orders.ListOrders()
	out := make([]map[string]interface{}, 0, len(orders))
	for _, order := range orders {
		out = append(out, orderResponse(order))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetOrder(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orderResponse(order))
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	order, err := h.Orders.GetOrder(orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	png, err := qrcode.Encode("dineout://orders/"+order.ID, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) resolveAddress(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		http.Error(w, "Missing or invalid lat/lng", http.StatusBadRequest)
		return
	}

	address := geo.FallbackAddress(lat, lng)
	if h.Resolver != nil {
		address = h.Resolver.Resolve(r.Context(), lat, lng)
	}
	writeJSON(w, http.StatusOK, map[string]string{"address": address})
}

// session resolves the caller's cart session from the X-Session-ID header,
// defaulting to a single shared session for clients that never set one.
func (h *Handler) session(r *http.Request) *cart.Session {
	id := r.Header.Get("X-Session-ID")
	if id == "" {
		id = "default"
	}
	return h.Sessions.Get(id)
}

func (h *Handler) writeCart(w http.ResponseWriter, status int, session *cart.Session) {
	lines := session.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	subtotal := session.TotalPrice()
	writeJSON(w, status, map[string]interface{}{
		"lines":         lines,
		"total_items":   session.TotalItems(),
		"subtotal":      round2(subtotal),
		"delivery_fee":  service.DeliveryFee,
		"total":         round2(subtotal + service.DeliveryFee),
		"state":         session.State(),
		"restaurant_id": session.RestaurantID(),
	})
}

// orderResponse decorates a stored order with the presentation-only
// delivery fee and grand total.
func orderResponse(order domain.Order) map[string]interface{} {
	return map[string]interface{}{
		"order":        order,
		"subtotal":     round2(order.Total),
		"delivery_fee": service.DeliveryFee,
		"grand_total":  round2(order.Total + service.DeliveryFee),
		"total_items":  order.TotalItems(),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

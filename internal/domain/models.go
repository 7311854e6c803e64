package domain

import "time"

type MenuItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	ImageURL        string   `json:"image_url,omitempty"`
	IsVegetarian    bool     `json:"is_vegetarian"`
	IsSpicy         bool     `json:"is_spicy"`
	Allergens       []string `json:"allergens,omitempty"`
	Calories        int      `json:"calories,omitempty"`
	PreparationTime int      `json:"preparation_time,omitempty"` // minutes
}

type MenuCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Restaurant struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Cuisine        string            `json:"cuisine"`
	Rating         float64           `json:"rating"`
	ImageURL       string            `json:"image_url,omitempty"`
	Location       Location          `json:"location"`
	Address        string            `json:"address"`
	Phone          string            `json:"phone"`
	Description    string            `json:"description"`
	PriceRange     string            `json:"price_range"`
	OpeningHours   map[string]string `json:"opening_hours"`
	Features       []string          `json:"features,omitempty"`
	Menu           []MenuCategory    `json:"menu"`
	IsOpen         bool              `json:"is_open"`
	Reservations   bool              `json:"reservations"`
	Delivery       bool              `json:"delivery"`
	Takeout        bool              `json:"takeout"`
	OutdoorSeating bool              `json:"outdoor_seating"`
	Parking        bool              `json:"parking"`
	Wifi           bool              `json:"wifi"`
	Accessibility  bool              `json:"accessibility"`
}

// AveragePrice returns the mean price across the whole menu, 0 for an
// empty menu.
func (r *Restaurant) AveragePrice() float64 {
	var sum float64
	var count int
	for _, category := range r.Menu {
		for _, item := range category.Items {
			sum += item.Price
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// VegetarianOptions returns every vegetarian item on the menu, in menu order.
func (r *Restaurant) VegetarianOptions() []MenuItem {
	var items []MenuItem
	for _, category := range r.Menu {
		for _, item := range category.Items {
			if item.IsVegetarian {
				items = append(items, item)
			}
		}
	}
	return items
}

func (r *Restaurant) CategoryByID(categoryID string) (MenuCategory, bool) {
	for _, category := range r.Menu {
		if category.ID == categoryID {
			return category, true
		}
	}
	return MenuCategory{}, false
}

func (r *Restaurant) ItemByID(itemID string) (MenuItem, bool) {
	for _, category := range r.Menu {
		for _, item := range category.Items {
			if item.ID == itemID {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

const (
	StatusPending    = "Pending"
	StatusConfirmed  = "Confirmed"
	StatusPreparing  = "Preparing"
	StatusReady      = "Ready for Pickup"
	StatusDelivering = "Out for Delivery"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

type OrderItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is an immutable snapshot of a cart taken at checkout time. Total is
// the item subtotal; the delivery fee is presentation-only and never folded
// into it.
type Order struct {
	ID              string      `json:"id"`
	RestaurantID    string      `json:"restaurant_id"`
	RestaurantName  string      `json:"restaurant_name"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	DeliveryAddress string      `json:"delivery_address"`
	PaymentMethod   string      `json:"payment_method"`
	CreatedAt       time.Time   `json:"created_at"`
}

func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

type OrderEventItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type OrderEvent struct {
	Type         string           `json:"type"`
	OrderID      string           `json:"order_id"`
	RestaurantID string           `json:"restaurant_id"`
	Items        []OrderEventItem `json:"items"`
	Total        float64          `json:"total"`
	Timestamp    time.Time        `json:"timestamp"`
}

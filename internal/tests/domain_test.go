package tests

import (
	"testing"
	"time"

	"dineout/internal/catalog"
	"dineout/internal/domain"

	"github.com/stretchr/testify/assert"
)

// 2024-01-08 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, 1, 8, hour, minute, 0, 0, time.UTC)
}

func TestRestaurant_IsOpenAt(t *testing.T) {
	r := domain.Restaurant{
		ID:     "r1",
		IsOpen: true,
		OpeningHours: map[string]string{
			"Monday": "12:00 - 23:00",
		},
	}

	tests := []struct {
		name     string
		at       time.Time
		expected bool
	}{
		{"inside_range", monday(22, 0), true},
		{"after_close", monday(23, 30), false},
		{"before_open", monday(11, 59), false},
		{"open_bound_inclusive", monday(12, 0), true},
		{"close_bound_inclusive", monday(23, 0), true},
		{"day_absent", monday(22, 0).AddDate(0, 0, 1), false}, // Tuesday
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, r.IsOpenAt(testCase.at))
		})
	}
}

func TestRestaurant_IsOpenAt_MidnightWrap(t *testing.T) {
	r := domain.Restaurant{
		ID:     "r1",
		IsOpen: true,
		OpeningHours: map[string]string{
			"Monday": "18:00 - 00:00",
		},
	}

	assert.True(t, r.IsOpenAt(monday(23, 30)))
	assert.True(t, r.IsOpenAt(monday(0, 0)))
	assert.False(t, r.IsOpenAt(monday(17, 59)))
	assert.False(t, r.IsOpenAt(monday(0, 1)))
}

func TestRestaurant_IsOpenAt_Override(t *testing.T) {
	r := domain.Restaurant{
		ID:     "r1",
		IsOpen: false,
		OpeningHours: map[string]string{
			"Monday": "00:00 - 23:59",
		},
	}
	assert.False(t, r.IsOpenAt(monday(12, 0)))
}

func TestRestaurant_IsOpenAt_MalformedHours(t *testing.T) {
	tests := []struct {
		name  string
		hours string
	}{
		{"garbage", "whenever"},
		{"missing_close", "12:00 -"},
		{"bad_minutes", "12:61 - 23:00"},
		{"zero_length_window", "12:00 - 12:00"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r := domain.Restaurant{
				IsOpen:       true,
				OpeningHours: map[string]string{"Monday": testCase.hours},
			}
			assert.False(t, r.IsOpenAt(monday(12, 0)))
		})
	}
}

func TestRestaurant_DerivedQueries(t *testing.T) {
	r := domain.Restaurant{
		Menu: []domain.MenuCategory{
			{
				ID: "a",
				Items: []domain.MenuItem{
					{ID: "1", Name: "Tzatziki", Price: 4.50, IsVegetarian: true},
					{ID: "2", Name: "Souvlaki", Price: 14.50},
				},
			},
			{
				ID: "b",
				Items: []domain.MenuItem{
					{ID: "3", Name: "Gemista", Price: 11.00, IsVegetarian: true},
				},
			},
		},
	}

	assert.InDelta(t, 10.0, r.AveragePrice(), 1e-9)

	veg := r.VegetarianOptions()
	assert.Len(t, veg, 2)
	assert.Equal(t, "1", veg[0].ID)
	assert.Equal(t, "3", veg[1].ID)

	category, ok := r.CategoryByID("b")
	assert.True(t, ok)
	assert.Equal(t, "b", category.ID)

	_, ok = r.CategoryByID("missing")
	assert.False(t, ok)

	item, ok := r.ItemByID("2")
	assert.True(t, ok)
	assert.Equal(t, "Souvlaki", item.Name)
}

func TestRestaurant_AveragePrice_EmptyMenu(t *testing.T) {
	r := domain.Restaurant{}
	assert.Equal(t, 0.0, r.AveragePrice())
}

func TestCatalog_Lookups(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, 3, c.Len())

	restaurants := c.List()
	assert.Equal(t, "Taverna Platanos", restaurants[0].Name)

	r, ok := c.Get("1")
	assert.True(t, ok)
	assert.Equal(t, "Greek", r.Cuisine)

	_, ok = c.Get("99")
	assert.False(t, ok)

	item, ok := c.Item("1", "5")
	assert.True(t, ok)
	assert.Equal(t, "Moussaka", item.Name)
	assert.InDelta(t, 12.80, item.Price, 1e-9)

	_, ok = c.Item("1", "15") // belongs to restaurant 2
	assert.False(t, ok)
}

func TestOrder_TotalItems(t *testing.T) {
	order := domain.Order{
		Items: []domain.OrderItem{
			{ItemID: "1", Quantity: 2},
			{ItemID: "5", Quantity: 1},
		},
	}
	assert.Equal(t, 3, order.TotalItems())
}

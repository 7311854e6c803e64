package catalog

import "dineout/internal/domain"

// SampleRestaurants returns the demo catalog: three Athens restaurants with
// full menus. The slice is rebuilt on every call so callers can never mutate
// the shared copy held by a Catalog.
func SampleRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:          "1",
			Name:        "Taverna Platanos",
			Cuisine:     "Greek",
			Rating:      4.7,
			Address:     "15 Dionysiou Areopagitou, Athens 11742",
			Phone:       "+30 21 0923 8260",
			Description: "Traditional Greek taverna serving authentic dishes in a cozy atmosphere with outdoor seating under a huge plane tree.",
			PriceRange:  "€€",
			Location:    domain.Location{Lat: 37.9685, Lng: 23.7319},
			OpeningHours: map[string]string{
				"Monday":    "12:00 - 23:00",
				"Tuesday":   "12:00 - 23:00",
				"Wednesday": "12:00 - 23:00",
				"Thursday":  "12:00 - 23:00",
				"Friday":    "12:00 - 00:00",
				"Saturday":  "12:00 - 00:00",
				"Sunday":    "12:00 - 23:00",
			},
			Features: []string{"Outdoor Seating", "Traditional", "Family Friendly"},
			Menu: []domain.MenuCategory{
				{
					ID:          "appetizers1",
					Name:        "Appetizers",
					Description: "Traditional Greek starters to share",
					Items: []domain.MenuItem{
						{ID: "1", Name: "Tzatziki", Description: "Creamy yogurt dip with cucumber, garlic and olive oil", Price: 4.50, IsVegetarian: true, Allergens: []string{"milk"}},
						{ID: "2", Name: "Dolmades", Description: "Grape leaves stuffed with rice and herbs", Price: 5.80, IsVegetarian: true},
						{ID: "3", Name: "Saganaki", Description: "Pan-fried cheese with lemon", Price: 6.50, IsVegetarian: true, Allergens: []string{"milk"}},
						{ID: "4", Name: "Greek Salad", Description: "Tomatoes, cucumbers, onions, feta cheese and olives", Price: 7.50, IsVegetarian: true, Allergens: []string{"milk"}},
					},
				},
				{
					ID:          "mains1",
					Name:        "Main Dishes",
					Description: "Classic Greek mains cooked with traditional recipes",
					Items: []domain.MenuItem{
						{ID: "5", Name: "Moussaka", Description: "Layers of eggplant, potatoes and seasoned ground beef topped with béchamel sauce", Price: 12.80, Allergens: []string{"milk", "gluten"}, PreparationTime: 25},
						{ID: "6", Name: "Souvlaki Platter", Description: "Grilled skewers of marinated pork served with pita, tzatziki and fries", Price: 14.50, Allergens: []string{"gluten"}, PreparationTime: 20},
						{ID: "7", Name: "Pastitsio", Description: "Baked pasta with ground beef and béchamel sauce", Price: 12.00, Allergens: []string{"milk", "gluten"}},
						{ID: "8", Name: "Gemista", Description: "Tomatoes and peppers stuffed with rice and herbs", Price: 11.50, IsVegetarian: true},
					},
				},
				{
					ID:          "desserts1",
					Name:        "Desserts",
					Description: "Sweet treats to end your meal",
					Items: []domain.MenuItem{
						{ID: "9", Name: "Baklava", Description: "Phyllo pastry with nuts and honey", Price: 5.50, IsVegetarian: true, Allergens: []string{"nuts", "gluten"}},
						{ID: "10", Name: "Galaktoboureko", Description: "Custard-filled phyllo pastry with syrup", Price: 6.00, IsVegetarian: true, Allergens: []string{"milk", "gluten"}},
						{ID: "11", Name: "Greek Yogurt with Honey", Description: "Creamy yogurt topped with honey and walnuts", Price: 4.50, IsVegetarian: true, Allergens: []string{"milk", "nuts"}},
					},
				},
			},
			IsOpen:         true,
			Delivery:       true,
			Takeout:        true,
			OutdoorSeating: true,
			Wifi:           true,
		},
		{
			ID:          "2",
			Name:        "Psaras Taverna",
			Cuisine:     "Seafood",
			Rating:      4.5,
			Address:     "22 Aiolou, Athens 10551",
			Phone:       "+30 21 0321 8733",
			Description: "Seafood restaurant specializing in fresh catches of the day with a beautiful view of the harbor.",
			PriceRange:  "€€",
			Location:    domain.Location{Lat: 37.9749, Lng: 23.7283},
			OpeningHours: map[string]string{
				"Monday":    "18:00 - 23:00",
				"Tuesday":   "18:00 - 23:00",
				"Wednesday": "18:00 - 23:00",
				"Thursday":  "18:00 - 23:00",
				"Friday":    "18:00 - 00:00",
				"Saturday":  "12:00 - 00:00",
				"Sunday":    "12:00 - 23:00",
			},
			Features: []string{"Seafood", "Outdoor Seating", "Sea View"},
			Menu: []domain.MenuCategory{
				{
					ID:          "appetizers2",
					Name:        "Appetizers",
					Description: "Fresh seafood starters",
					Items: []domain.MenuItem{
						{ID: "12", Name: "Grilled Octopus", Description: "Tender octopus grilled with olive oil and lemon", Price: 12.00, Allergens: []string{"molluscs"}},
						{ID: "13", Name: "Fried Calamari", Description: "Crispy fried calamari served with garlic sauce", Price: 8.50, Allergens: []string{"molluscs", "gluten"}},
						{ID: "14", Name: "Taramasalata", Description: "Fish roe dip with olive oil and lemon", Price: 5.00, Allergens: []string{"fish"}},
					},
				},
				{
					ID:          "mains2",
					Name:        "Main Dishes",
					Description: "Fresh seafood from the Aegean Sea",
					Items: []domain.MenuItem{
						{ID: "15", Name: "Grilled Sea Bream", Description: "Fresh sea bream grilled with olive oil, lemon and herbs", Price: 18.00, Allergens: []string{"fish"}, PreparationTime: 25},
						{ID: "16", Name: "Seafood Pasta", Description: "Pasta with mixed seafood in tomato sauce", Price: 16.50, Allergens: []string{"gluten", "crustaceans", "molluscs"}},
						{ID: "17", Name: "Shrimp Saganaki", Description: "Shrimp cooked in tomato sauce with feta cheese", Price: 15.00, IsSpicy: true, Allergens: []string{"crustaceans", "milk"}},
					},
				},
			},
			IsOpen:         true,
			Reservations:   true,
			Takeout:        true,
			OutdoorSeating: true,
		},
		{
			ID:          "3",
			Name:        "To Kafeneio",
			Cuisine:     "Greek",
			Rating:      4.6,
			Address:     "Loukianou 26, Athens 10675",
			Phone:       "+30 21 0722 0920",
			Description: "A traditional Greek café serving home-style food in a rustic setting with a lovely courtyard.",
			PriceRange:  "€",
			Location:    domain.Location{Lat: 37.9783, Lng: 23.7414},
			OpeningHours: map[string]string{
				"Monday":    "07:00 - 23:00",
				"Tuesday":   "07:00 - 23:00",
				"Wednesday": "07:00 - 23:00",
				"Thursday":  "07:00 - 23:00",
				"Friday":    "07:00 - 00:00",
				"Saturday":  "08:00 - 00:00",
				"Sunday":    "08:00 - 22:00",
			},
			Features: []string{"Breakfast", "Coffee", "Traditional", "Outdoor Seating"},
			Menu: []domain.MenuCategory{
				{
					ID:          "breakfast",
					Name:        "Breakfast",
					Description: "Traditional Greek breakfast options",
					Items: []domain.MenuItem{
						{ID: "18", Name: "Greek Yogurt with Honey and Nuts", Description: "Thick Greek yogurt with honey and mixed nuts", Price: 6.00, IsVegetarian: true, Allergens: []string{"milk", "nuts"}},
						{ID: "19", Name: "Spanakopita", Description: "Spinach and feta cheese pie in phyllo pastry", Price: 4.50, IsVegetarian: true, Allergens: []string{"milk", "gluten"}},
						{ID: "20", Name: "Greek Omelet", Description: "Eggs with tomatoes, feta cheese and herbs", Price: 7.50, IsVegetarian: true, Allergens: []string{"eggs", "milk"}},
					},
				},
				{
					ID:          "mains3",
					Name:        "Main Dishes",
					Description: "Home-style Greek favorites",
					Items: []domain.MenuItem{
						{ID: "21", Name: "Beef Stifado", Description: "Slow-cooked beef stew with onions and spices", Price: 13.50, PreparationTime: 30},
						{ID: "22", Name: "Imam Baildi", Description: "Stuffed eggplant with tomato sauce and herbs", Price: 10.00, IsVegetarian: true},
						{ID: "23", Name: "Chicken Souvlaki Plate", Description: "Grilled chicken skewers with pita, salad and tzatziki", Price: 11.50, Allergens: []string{"gluten", "milk"}},
					},
				},
				{
					ID:          "drinks",
					Name:        "Drinks",
					Description: "Beverages to accompany your meal",
					Items: []domain.MenuItem{
						{ID: "24", Name: "Greek Coffee", Description: "Traditional Greek coffee served in a small cup", Price: 2.50, IsVegetarian: true},
						{ID: "25", Name: "House Wine (500ml)", Description: "Local house wine, red or white", Price: 8.00, IsVegetarian: true, Allergens: []string{"sulphites"}},
						{ID: "26", Name: "Ouzo", Description: "Traditional Greek anise-flavored spirit", Price: 3.50, IsVegetarian: true},
					},
				},
			},
			IsOpen:   true,
			Takeout:  true,
			Wifi:     true,
			Parking:  false,
			Delivery: true,
		},
	}
}

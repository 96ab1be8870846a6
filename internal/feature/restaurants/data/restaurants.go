// Package data holds the static restaurant catalog served when the database
// is unreachable or empty.
package data

import "rapideat_backend/internal/feature/restaurants/domain/entity"

// SampleRestaurants returns the built-in catalog. The slice is rebuilt on
// every call so callers can filter and sort without affecting each other.
func SampleRestaurants() []entity.Restaurant {
	return []entity.Restaurant{
		{
			Slug:         "spice-symphony",
			Name:         "Spice Symphony",
			Description:  "North Indian classics with slow-cooked gravies and charcoal kebabs.",
			Cuisines:     []string{"North Indian", "Mughlai", "Biryani"},
			Locality:     "Indiranagar",
			City:         "Bengaluru",
			AreaName:     "100 Feet Road",
			Rating:       4.4,
			ReviewCount:  2180,
			DeliveryTime: 32,
			CostForTwo:   550,
			Distance:     2.1,
			ImageURL:     "https://images.rapideat.app/restaurants/spice-symphony.jpg",
			Offer: &entity.RestaurantOffer{
				Title:              "50% off up to ₹100",
				CouponCode:         "TRYNEW",
				DiscountPercentage: 50,
				MaxDiscount:        100,
			},
			Promoted:       true,
			Tags:           []string{"bestseller"},
			EtaDescription: "30-35 mins",
		},
		{
			Slug:           "wok-this-way",
			Name:           "Wok This Way",
			Description:    "Hand-tossed noodles, dim sum, and wok-fried specials.",
			Cuisines:       []string{"Chinese", "Asian", "Thai"},
			Locality:       "Koramangala",
			City:           "Bengaluru",
			AreaName:       "5th Block",
			Rating:         4.2,
			ReviewCount:    1640,
			DeliveryTime:   28,
			CostForTwo:     450,
			Distance:       3.4,
			ImageURL:       "https://images.rapideat.app/restaurants/wok-this-way.jpg",
			EtaDescription: "25-30 mins",
		},
		{
			Slug:           "the-green-bowl",
			Name:           "The Green Bowl",
			Description:    "Fresh salads, grain bowls, and cold-pressed juices.",
			Cuisines:       []string{"Healthy Food", "Salads", "Continental"},
			Locality:       "HSR Layout",
			City:           "Bengaluru",
			AreaName:       "Sector 2",
			Rating:         4.6,
			ReviewCount:    980,
			DeliveryTime:   24,
			CostForTwo:     400,
			Distance:       1.8,
			ImageURL:       "https://images.rapideat.app/restaurants/the-green-bowl.jpg",
			IsPureVeg:      true,
			Tags:           []string{"healthy", "new"},
			EtaDescription: "20-25 mins",
		},
		{
			Slug:         "tandoor-tales",
			Name:         "Tandoor Tales",
			Description:  "Clay-oven breads and smoky tandoori platters.",
			Cuisines:     []string{"North Indian", "Tandoor", "Kebabs"},
			Locality:     "Whitefield",
			City:         "Bengaluru",
			AreaName:     "ITPL Main Road",
			Rating:       4.1,
			ReviewCount:  3210,
			DeliveryTime: 38,
			CostForTwo:   600,
			Distance:     5.6,
			ImageURL:     "https://images.rapideat.app/restaurants/tandoor-tales.jpg",
			Offer: &entity.RestaurantOffer{
				Title:       "Free dessert on orders above ₹499",
				Description: "Gulab jamun or brownie",
			},
			EtaDescription: "35-40 mins",
		},
		{
			Slug:           "dosa-junction",
			Name:           "Dosa Junction",
			Description:    "Crispy dosas, fluffy idlis, and filter coffee all day.",
			Cuisines:       []string{"South Indian", "Breakfast"},
			Locality:       "Jayanagar",
			City:           "Bengaluru",
			AreaName:       "4th Block",
			Rating:         4.5,
			ReviewCount:    5420,
			DeliveryTime:   22,
			CostForTwo:     250,
			Distance:       2.9,
			ImageURL:       "https://images.rapideat.app/restaurants/dosa-junction.jpg",
			IsPureVeg:      true,
			Promoted:       true,
			Tags:           []string{"bestseller", "value"},
			EtaDescription: "20-25 mins",
		},
		{
			Slug:           "burger-barracks",
			Name:           "Burger Barracks",
			Description:    "Smashed patties, loaded fries, and thick shakes.",
			Cuisines:       []string{"American", "Burgers", "Fast Food"},
			Locality:       "Indiranagar",
			City:           "Bengaluru",
			AreaName:       "CMH Road",
			Rating:         3.9,
			ReviewCount:    860,
			DeliveryTime:   26,
			CostForTwo:     350,
			Distance:       2.4,
			ImageURL:       "https://images.rapideat.app/restaurants/burger-barracks.jpg",
			EtaDescription: "25-30 mins",
		},
		{
			Slug:         "bella-napoli",
			Name:         "Bella Napoli",
			Description:  "Wood-fired pizzas and fresh pasta in Neapolitan style.",
			Cuisines:     []string{"Italian", "Pizza", "Pasta"},
			Locality:     "Koramangala",
			City:         "Bengaluru",
			AreaName:     "7th Block",
			Rating:       4.3,
			ReviewCount:  1275,
			DeliveryTime: 34,
			CostForTwo:   700,
			Distance:     4.1,
			ImageURL:     "https://images.rapideat.app/restaurants/bella-napoli.jpg",
			Offer: &entity.RestaurantOffer{
				Title:              "20% off on weekdays",
				DiscountPercentage: 20,
				MaxDiscount:        150,
			},
			EtaDescription: "30-35 mins",
		},
		{
			Slug:           "biryani-bhatti",
			Name:           "Biryani Bhatti",
			Description:    "Dum-style biryanis sealed and slow-cooked over coals.",
			Cuisines:       []string{"Biryani", "Hyderabadi", "North Indian"},
			Locality:       "BTM Layout",
			City:           "Bengaluru",
			AreaName:       "Outer Ring Road",
			Rating:         4.0,
			ReviewCount:    4030,
			DeliveryTime:   40,
			CostForTwo:     500,
			Distance:       6.2,
			ImageURL:       "https://images.rapideat.app/restaurants/biryani-bhatti.jpg",
			Tags:           []string{"bestseller"},
			EtaDescription: "40-45 mins",
		},
	}
}

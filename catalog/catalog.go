package catalog

import "storefront/models"

// Products returns the built-in seed catalog. It stands in for a product
// backend when no database is configured and seeds an empty products table
// when one is.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Aurora Smartphone X",
			Price:       69900,
			Image:       "/images/aurora-smartphone-x.jpg",
			Category:    "Electronics",
			Description: "6.5-inch OLED phone with a two-day battery and a 108MP camera.",
			Rating:      4.6,
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Pulse Wireless Headphones",
			Price:       19900,
			Image:       "/images/pulse-headphones.jpg",
			Category:    "Electronics",
			Description: "Over-ear noise cancelling headphones with 30 hours of playback.",
			Rating:      4.4,
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Vertex Laptop 14",
			Price:       129900,
			Image:       "/images/vertex-laptop-14.jpg",
			Category:    "Electronics",
			Description: "Thin and light 14-inch laptop for work and travel.",
			Rating:      4.7,
			InStock:     true,
		},
		{
			ID:          "4",
			Name:        "Trailblazer Running Shoes",
			Price:       8900,
			Image:       "/images/trailblazer-shoes.jpg",
			Category:    "Clothing",
			Description: "Lightweight trail runners with a cushioned midsole.",
			Rating:      4.2,
			InStock:     true,
		},
		{
			ID:          "5",
			Name:        "Harbor Denim Jacket",
			Price:       7500,
			Image:       "/images/harbor-denim-jacket.jpg",
			Category:    "Clothing",
			Description: "Classic straight-cut denim jacket in stonewash blue.",
			Rating:      4.0,
			InStock:     true,
		},
		{
			ID:          "6",
			Name:        "Summit Insulated Bottle",
			Price:       2900,
			Image:       "/images/summit-bottle.jpg",
			Category:    "Accessories",
			Description: "750ml steel bottle that keeps drinks cold for 24 hours.",
			Rating:      4.8,
			InStock:     true,
		},
		{
			ID:          "7",
			Name:        "Drift Leather Wallet",
			Price:       4500,
			Image:       "/images/drift-wallet.jpg",
			Category:    "Accessories",
			Description: "Slim full-grain leather wallet with RFID shielding.",
			Rating:      4.3,
			InStock:     false,
		},
		{
			ID:          "8",
			Name:        "Ember Pour-Over Kettle",
			Price:       5900,
			Image:       "/images/ember-kettle.jpg",
			Category:    "Home",
			Description: "Gooseneck kettle with precise temperature control for phone-free mornings.",
			Rating:      4.5,
			InStock:     true,
		},
		{
			ID:          "9",
			Name:        "Nimbus Desk Lamp",
			Price:       3900,
			Image:       "/images/nimbus-lamp.jpg",
			Category:    "Home",
			Description: "Dimmable LED desk lamp with a weighted aluminum base.",
			Rating:      4.1,
			InStock:     true,
		},
		{
			ID:          "10",
			Name:        "Strata Smartwatch",
			Price:       24900,
			Image:       "/images/strata-smartwatch.jpg",
			Category:    "Electronics",
			Description: "Fitness smartwatch that pairs with any phone and tracks sleep.",
			Rating:      3.9,
			InStock:     true,
		},
	}
}

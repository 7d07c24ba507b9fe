package models

// Product is a catalog entry. The catalog is loaded once at startup and
// treated as immutable; prices are integer currency units (cents).
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"in_stock"`
}

type FilterRequest struct {
	SearchTerm *string `json:"search_term"`
	Category   *string `json:"category"`
}

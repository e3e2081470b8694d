package transaction

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string  `json:"id" doc:"Store assigned identifier"`
	Title       string  `json:"title" doc:"Product title"`
	Description string  `json:"description" doc:"Product description"`
	Price       float64 `json:"price" doc:"Sale price"`
	DateOfSale  string  `json:"dateOfSale" doc:"RFC3339 date of sale"`
	Sold        bool    `json:"sold" doc:"Whether the item was sold"`
	Category    string  `json:"category" doc:"Product category"`
}

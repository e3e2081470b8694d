package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          string
	Title       string
	Description string
	Price       float64
	DateOfSale  time.Time
	Sold        bool
	Category    string
}

// ListQuery selects one page of transactions.
type ListQuery struct {
	Month   *time.Month
	Search  string
	Page    int
	PerPage int
}

// TransactionPage is one page of a listing plus the unpaginated total.
type TransactionPage struct {
	Transactions []Transaction
	Total        int64
	Page         int
	PerPage      int
}

// Statistics summarises the sales of one month.
type Statistics struct {
	TotalSaleAmount decimal.Decimal
	SoldItems       int64
	UnsoldItems     int64
}

type PriceRangeCount struct {
	Range string
	Count int64
}

type CategoryCount struct {
	Category string
	Count    int64
}

// CombinedReport holds the three monthly reports computed together.
type CombinedReport struct {
	Statistics *Statistics
	BarChart   []PriceRangeCount
	PieChart   []CategoryCount
}

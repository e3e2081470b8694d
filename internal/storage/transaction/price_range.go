package transaction

import "math"

// PriceRange is one bar-chart bucket. A price belongs to the first range whose
// Max is not below it, so adjacent ranges never overlap.
type PriceRange struct {
	Label string
	Min   float64
	Max   float64
}

// Unbounded reports whether the range has no upper limit.
func (r PriceRange) Unbounded() bool {
	return math.IsInf(r.Max, 1)
}

// PriceRanges are the fixed bar-chart buckets in display order.
var PriceRanges = []PriceRange{
	{Label: "0-100", Min: 0, Max: 100},
	{Label: "101-200", Min: 101, Max: 200},
	{Label: "201-300", Min: 201, Max: 300},
	{Label: "301-400", Min: 301, Max: 400},
	{Label: "401-500", Min: 401, Max: 500},
	{Label: "501-600", Min: 501, Max: 600},
	{Label: "601-700", Min: 601, Max: 700},
	{Label: "701-800", Min: 701, Max: 800},
	{Label: "801-900", Min: 801, Max: 900},
	{Label: "901-above", Min: 901, Max: math.Inf(1)},
}

// PriceRangeIndex returns the index into PriceRanges for price, or -1 when the
// price is negative.
func PriceRangeIndex(price float64) int {
	if price < 0 || math.IsNaN(price) {
		return -1
	}
	for i, r := range PriceRanges {
		if price <= r.Max {
			return i
		}
	}
	return len(PriceRanges) - 1
}

package mongostore

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// filterClauses translates a filter into the conjunction of match clauses.
// Month compares the calendar month of dateOfSale (UTC) in any year.
func filterClauses(filter *transaction.TransactionFilter) bson.A {
	clauses := bson.A{}
	if filter == nil {
		return clauses
	}

	if filter.Month != nil {
		clauses = append(clauses, bson.M{
			"$expr": bson.M{"$eq": bson.A{bson.M{"$month": "$dateOfSale"}, int32(*filter.Month)}},
		})
	}

	if filter.Search != "" {
		pattern := regexp.QuoteMeta(filter.Search)
		insensitive := primitive.Regex{Pattern: pattern, Options: "i"}
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"title": insensitive},
			bson.M{"description": insensitive},
			bson.M{"$expr": bson.M{"$regexMatch": bson.M{
				"input": bson.M{"$toString": "$price"},
				"regex": pattern,
			}}},
		}})
	}

	return clauses
}

func and(clauses bson.A) bson.M {
	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0].(bson.M)
	default:
		return bson.M{"$and": clauses}
	}
}

// buildFilter returns the find/count predicate for a filter.
func buildFilter(filter *transaction.TransactionFilter) bson.M {
	return and(filterClauses(filter))
}

// reportFilter drops the search term; reports are scoped by month only.
func reportFilter(filter *transaction.TransactionFilter) *transaction.TransactionFilter {
	if filter == nil {
		return nil
	}
	return &transaction.TransactionFilter{Month: filter.Month}
}

func statisticsPipeline(filter *transaction.TransactionFilter) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: buildFilter(reportFilter(filter))}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalSaleAmount", Value: bson.M{"$sum": "$price"}},
			{Key: "soldItems", Value: bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$sold", true}}, 1, 0}}}},
			{Key: "unsoldItems", Value: bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$sold", false}}, 1, 0}}}},
		}}},
	}
}

// priceRangeSwitch maps a price to its index in transaction.PriceRanges.
// Branches are evaluated in order, so each price lands in exactly one range.
func priceRangeSwitch() bson.M {
	last := len(transaction.PriceRanges) - 1
	branches := bson.A{}
	for i, r := range transaction.PriceRanges[:last] {
		branches = append(branches, bson.M{
			"case": bson.M{"$lte": bson.A{"$price", r.Max}},
			"then": int32(i),
		})
	}
	return bson.M{"$switch": bson.M{"branches": branches, "default": int32(last)}}
}

func priceRangePipeline(filter *transaction.TransactionFilter) mongo.Pipeline {
	clauses := filterClauses(reportFilter(filter))
	clauses = append(clauses, bson.M{"price": bson.M{"$gte": 0}})

	return mongo.Pipeline{
		{{Key: "$match", Value: and(clauses)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: priceRangeSwitch()},
			{Key: "count", Value: bson.M{"$sum": 1}},
		}}},
	}
}

func categoryPipeline(filter *transaction.TransactionFilter) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: buildFilter(reportFilter(filter))}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.M{"$sum": 1}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

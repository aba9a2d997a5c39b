package history

import (
	"sort"
	"strings"

	"github.com/dharmasatrya/flightpredict/internal/models"
)

type Filter struct {
	Airline   string `query:"airline"`
	Class     string `query:"class"`
	Route     string `query:"route"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
}

func Apply(results []models.PredictionResult, filter *Filter) []models.PredictionResult {
	if filter == nil {
		return results
	}
	filtered := applyFilters(results, filter)
	return applySort(filtered, filter.SortBy, filter.SortOrder)
}

func applyFilters(results []models.PredictionResult, filter *Filter) []models.PredictionResult {
	out := make([]models.PredictionResult, 0, len(results))
	for _, r := range results {
		if matchesFilter(r, filter) {
			out = append(out, r)
		}
	}
	return out
}

func matchesFilter(r models.PredictionResult, filter *Filter) bool {
	if filter.Airline != "" && !strings.EqualFold(r.Query.Airline, filter.Airline) {
		return false
	}
	if filter.Class != "" && !strings.EqualFold(r.Query.Class, filter.Class) {
		return false
	}
	if filter.Route != "" && !strings.Contains(strings.ToLower(r.Query.Route()), strings.ToLower(filter.Route)) {
		return false
	}
	return true
}

// applySort leaves the newest-first order alone unless asked otherwise.
func applySort(results []models.PredictionResult, sortBy, sortOrder string) []models.PredictionResult {
	if len(results) == 0 {
		return results
	}

	ascending := strings.ToLower(sortOrder) != "desc"

	switch strings.ToLower(sortBy) {
	case "price":
		sort.SliceStable(results, func(i, j int) bool {
			if ascending {
				return results[i].PredictedPrice < results[j].PredictedPrice
			}
			return results[i].PredictedPrice > results[j].PredictedPrice
		})

	case "days_left":
		sort.SliceStable(results, func(i, j int) bool {
			if ascending {
				return results[i].Query.DaysLeft < results[j].Query.DaysLeft
			}
			return results[i].Query.DaysLeft > results[j].Query.DaysLeft
		})

	case "timestamp":
		sort.SliceStable(results, func(i, j int) bool {
			if ascending {
				return results[i].Timestamp.Before(results[j].Timestamp)
			}
			return results[i].Timestamp.After(results[j].Timestamp)
		})
	}

	return results
}

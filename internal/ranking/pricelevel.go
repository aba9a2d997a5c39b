package ranking

const (
	LevelLow    = "Low"
	LevelMedium = "Medium"
	LevelHigh   = "High"

	LowPriceCeiling    = 5000.0
	MediumPriceCeiling = 10000.0
)

// PriceLevel buckets a predicted fare in rupees.
func PriceLevel(price float64) string {
	switch {
	case price < LowPriceCeiling:
		return LevelLow
	case price < MediumPriceCeiling:
		return LevelMedium
	default:
		return LevelHigh
	}
}

package market

// Tracked coin ids requested from the price provider.
var TrackedCoins = []string{
	"bitcoin",
	"ethereum",
	"litecoin",
	"the-sandbox",
	"green-satoshi-token",
	"stepn",
}

// Coin mirrors the provider's market snapshot for one asset. Field names
// follow the provider's wire format, which the dashboard consumes directly.
type Coin struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	Image                    string  `json:"image"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
}

// Point is a [unix millis, value] pair in a history series.
type Point [2]float64

// History is a provider market chart: hourly price, market cap, and volume
// series.
type History struct {
	Prices       []Point `json:"prices"`
	MarketCaps   []Point `json:"market_caps"`
	TotalVolumes []Point `json:"total_volumes"`
}

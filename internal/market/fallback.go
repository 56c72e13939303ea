package market

import (
	"math/rand"
	"time"
)

// FallbackCoins returns the static snapshot served when the provider is rate
// limiting or unreachable.
func FallbackCoins() []Coin {
	return []Coin{
		{
			ID:                       "bitcoin",
			Symbol:                   "btc",
			Name:                     "Bitcoin",
			Image:                    "https://assets.coingecko.com/coins/images/1/large/bitcoin.png",
			CurrentPrice:             64352.12,
			PriceChangePercentage24h: 1.25,
			MarketCap:                1259000000000,
			TotalVolume:              29853000000,
		},
		{
			ID:                       "ethereum",
			Symbol:                   "eth",
			Name:                     "Ethereum",
			Image:                    "https://assets.coingecko.com/coins/images/279/large/ethereum.png",
			CurrentPrice:             3050.87,
			PriceChangePercentage24h: 0.75,
			MarketCap:                366700000000,
			TotalVolume:              12853000000,
		},
		{
			ID:                       "litecoin",
			Symbol:                   "ltc",
			Name:                     "Litecoin",
			Image:                    "https://assets.coingecko.com/coins/images/2/large/litecoin.png",
			CurrentPrice:             78.24,
			PriceChangePercentage24h: -0.5,
			MarketCap:                5800000000,
			TotalVolume:              452000000,
		},
		{
			ID:                       "the-sandbox",
			Symbol:                   "sand",
			Name:                     "The Sandbox",
			Image:                    "https://assets.coingecko.com/coins/images/12129/large/sandbox_logo.jpg",
			CurrentPrice:             0.45,
			PriceChangePercentage24h: -2.1,
			MarketCap:                842000000,
			TotalVolume:              98000000,
		},
		{
			ID:                       "green-satoshi-token",
			Symbol:                   "gst",
			Name:                     "Green Satoshi Token",
			Image:                    "https://assets.coingecko.com/coins/images/21841/large/gst.png",
			CurrentPrice:             0.02,
			PriceChangePercentage24h: -5.2,
			MarketCap:                12500000,
			TotalVolume:              850000,
		},
		{
			ID:                       "stepn",
			Symbol:                   "gmt",
			Name:                     "STEPN",
			Image:                    "https://assets.coingecko.com/coins/images/23597/large/gmt.png",
			CurrentPrice:             0.15,
			PriceChangePercentage24h: -3.8,
			MarketCap:                92000000,
			TotalVolume:              4500000,
		},
	}
}

func fallbackStartPrice(id string) float64 {
	switch id {
	case "bitcoin":
		return 64000
	case "ethereum":
		return 3000
	case "litecoin":
		return 80
	case "the-sandbox":
		return 0.45
	case "green-satoshi-token":
		return 0.02
	case "stepn":
		return 0.15
	default:
		return 100
	}
}

// FallbackHistory generates a plausible hourly random-walk series for the
// chart when the provider is unavailable. Price moves stay within ±1% per
// hour.
func FallbackHistory(id string, days int) History {
	numPoints := days * 24
	history := History{
		Prices:       make([]Point, 0, numPoints),
		MarketCaps:   make([]Point, 0, numPoints),
		TotalVolumes: make([]Point, 0, numPoints),
	}

	price := fallbackStartPrice(id)
	now := time.Now().UnixMilli()
	for i := 0; i < numPoints; i++ {
		timestamp := float64(now - int64(numPoints-i)*time.Hour.Milliseconds())
		change := (rand.Float64() - 0.5) * 0.02
		price = price * (1 + change)
		history.Prices = append(history.Prices, Point{timestamp, price})
		history.MarketCaps = append(history.MarketCaps, Point{timestamp, price * 1000000})
		history.TotalVolumes = append(history.TotalVolumes, Point{timestamp, price * 10000})
	}

	return history
}

package earn

import "strings"

// Earning rates in tokens per 1000 steps.
var tokenRates = map[string]float64{
	"gst":  0.5,
	"gmt":  0.05,
	"sand": 0.2,
}

const (
	metersPerStep   = 0.76
	caloriesPerStep = 0.04
)

// Summary describes what a step count is worth: distance walked, calories
// burned, and tokens earned for the chosen token. Tokens for an unknown
// token code are zero.
type Summary struct {
	Steps      int     `json:"steps"`
	DistanceKm float64 `json:"distanceKm"`
	Calories   float64 `json:"calories"`
	Token      string  `json:"token"`
	Tokens     float64 `json:"tokens"`
}

// Rate returns the earning rate for a token in tokens per 1000 steps.
func Rate(token string) float64 {
	return tokenRates[strings.ToLower(token)]
}

// Summarize converts a step count into its move-to-earn summary.
func Summarize(steps int, token string) Summary {
	code := strings.ToLower(token)
	return Summary{
		Steps:      steps,
		DistanceKm: float64(steps) * metersPerStep / 1000,
		Calories:   float64(steps) * caloriesPerStep,
		Token:      code,
		Tokens:     float64(steps) / 1000 * Rate(code),
	}
}

package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Source provides market data for tracked coins.
type Source interface {
	Markets(ctx context.Context, ids []string) ([]Coin, error)
	MarketChart(ctx context.Context, id string, days int) (History, error)
}

// CoinGeckoClient fetches market data from the CoinGecko REST API.
type CoinGeckoClient struct {
	baseURL string
	http    *http.Client
}

// NewCoinGeckoClient builds a client against the given API base URL.
func NewCoinGeckoClient(baseURL string) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Markets returns current market snapshots for the requested coin ids.
func (c *CoinGeckoClient) Markets(ctx context.Context, ids []string) ([]Coin, error) {
	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("ids", strings.Join(ids, ","))
	query.Set("order", "market_cap_desc")
	query.Set("per_page", "100")
	query.Set("page", "1")
	query.Set("sparkline", "false")
	query.Set("price_change_percentage", "24h")

	var coins []Coin
	if err := c.get(ctx, "/coins/markets?"+query.Encode(), &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// MarketChart returns the historical series for one coin.
func (c *CoinGeckoClient) MarketChart(ctx context.Context, id string, days int) (History, error) {
	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("days", strconv.Itoa(days))

	var history History
	if err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/market_chart?"+query.Encode(), &history); err != nil {
		return History{}, err
	}
	return history, nil
}

func (c *CoinGeckoClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("market request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("market request: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode market response: %w", err)
	}
	return nil
}

package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/stepfolio/stepfolio/internal/config"
	"github.com/stepfolio/stepfolio/internal/logging"
	"github.com/stepfolio/stepfolio/internal/rates"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	cfg := config.Config{
		AppName:       "stepfolio-test",
		AppEnv:        "development",
		ExchangeRates: rates.Default(),
	}
	if err := Setup(app, Deps{Cfg: cfg, Logger: logging.Discard()}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return app
}

func TestSetupRequiresDatabaseOutsideDev(t *testing.T) {
	app := fiber.New()
	cfg := config.Config{AppEnv: "production", ExchangeRates: rates.Default()}
	if err := Setup(app, Deps{Cfg: cfg, Logger: logging.Discard()}); err == nil {
		t.Fatal("expected error without database in production")
	}
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
	if id, _ := body["request_id"].(string); id == "" {
		t.Error("expected request_id to be set")
	}
}

func TestHealthzInMemoryMode(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestWalletsSeededOnFirstList(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/wallets", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var wallets []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&wallets); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(wallets) != 3 {
		t.Fatalf("expected 3 seeded wallets, got %d", len(wallets))
	}
}

func TestValidateEndpoint(t *testing.T) {
	app := newTestApp(t)

	payload := `{"action":"transfer","currency":"eth","amount":"0.5","availableAmount":1.2,"destinationAddress":"0xABC123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/validate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["valid"] != true {
		t.Errorf("expected valid=true, got %v", body)
	}
}

package actions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/stepfolio/stepfolio/internal/rates"
)

func newValidateApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/validate", NewHandler(rates.Default()).Validate)
	return app
}

func postValidate(t *testing.T, app *fiber.App, payload string) map[string]any {
	t.Helper()

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
	return body
}

func TestValidateEndpointAccepts(t *testing.T) {
	app := newValidateApp()

	body := postValidate(t, app, `{"action":"transfer","currency":"gst","amount":"10","availableAmount":120.5,"destinationAddress":"0x8f26a53C2B7D71aF5C22D6CeB4aB295627135a6f"}`)
	if body["valid"] != true {
		t.Fatalf("expected valid response, got %v", body)
	}
}

func TestValidateEndpointReturnsMessage(t *testing.T) {
	app := newValidateApp()

	body := postValidate(t, app, `{"action":"cashout","currency":"gst","amount":"100","availableAmount":120.5,"cashoutMethod":"paypal"}`)
	if body["valid"] != false {
		t.Fatalf("expected invalid response, got %v", body)
	}
	if body["error"] != "Please enter your account information" {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestValidateEndpointBadJSON(t *testing.T) {
	app := newValidateApp()

	req := httptest.NewRequest(http.MethodPost, "/api/validate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

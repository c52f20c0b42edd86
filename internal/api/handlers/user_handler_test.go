package handlers

import (
	"Homestock-Backend/domain"
	"Homestock-Backend/internal/api/presenters"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLoginPrompt(t *testing.T) {
	app := fiber.New()
	h := NewUserHandler(nil, nil)
	app.Get("/api/v1/users/login", h.LoginPrompt)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/users/login", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	var body presenters.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Status {
		t.Error("expected status false")
	}
	if body.Message != domain.MessageLoginRequired {
		t.Errorf("expected %q, got %q", domain.MessageLoginRequired, body.Message)
	}
}

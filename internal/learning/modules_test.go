package learning

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestByCategory(t *testing.T) {
	if got := ByCategory(Modules, AllCategories); len(got) != len(Modules) {
		t.Fatalf("expected every module for All")
	}
	if got := ByCategory(Modules, ""); len(got) != len(Modules) {
		t.Fatalf("expected every module for empty category")
	}

	got := ByCategory(Modules, "Awareness")
	if len(got) != 2 || got[0].ID != "harassment" || got[1].ID != "abuse" {
		t.Fatalf("unexpected awareness modules: %+v", got)
	}

	if got := ByCategory(Modules, "Cooking"); len(got) != 0 {
		t.Fatalf("expected no modules for unknown category")
	}
}

func TestModulesRoute(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/learning"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/learning/modules?category=Core", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("modules status: %v", err)
	}
	var got []Module
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "consent" {
		t.Fatalf("unexpected modules: %+v", got)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/learning/categories", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("categories status: %v", err)
	}
}

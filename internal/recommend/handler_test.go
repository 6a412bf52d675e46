package recommend

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"agency-backend/internal/catalog"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	NewHandler(NewService(catalog.NewInMemoryRepository())).RegisterPublicRoutes(app)
	return app
}

func TestRecommendRoute_Registered(t *testing.T) {
	app := newTestApp()

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	if !routes["/api/recommend"] {
		t.Fatalf("expected route '/api/recommend' to be registered")
	}
}

func TestRecommend_Post(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/recommend", strings.NewReader(`{"industry":"ecommerce","company_size":"startup","primary_goal":"support"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var items []catalog.Item
	body, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != catalog.TitleCustomerService {
		t.Fatalf("expected %q first, got %q", catalog.TitleCustomerService, items[0].Title)
	}
	if items[1].Title != catalog.TitleML {
		t.Fatalf("expected %q second, got %q", catalog.TitleML, items[1].Title)
	}
}

func TestRecommend_BadBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/recommend", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

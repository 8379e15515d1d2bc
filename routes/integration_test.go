package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/mdaamman/caloriestracker/config"
	"github.com/mdaamman/caloriestracker/services"

	"github.com/gin-gonic/gin"
)

// Integration tests are opt-in: set INTEGRATION_TEST=1 and the DB_* env
// vars to run them against a real Postgres.
func setupTestServer(t *testing.T) *gin.Engine {
	if os.Getenv("INTEGRATION_TEST") != "1" {
		t.Skip("integration tests are disabled; set INTEGRATION_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	if os.Getenv("JWT_SECRET") == "" {
		_ = os.Setenv("JWT_SECRET", "test-secret")
	}
	config.InitDB()
	if _, _, err := services.SeedFoods(); err != nil {
		t.Fatalf("seeding foods failed: %v", err)
	}
	return SetupRouter()
}

func performRequest(r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad JSON response: %v (%s)", err, rec.Body.String())
	}
	return out
}

func signupUser(t *testing.T, r http.Handler, username string) string {
	t.Helper()
	rec := performRequest(r, http.MethodPost, "/signup", map[string]any{
		"username":       username,
		"email":          username + "@example.com",
		"password":       "secret123",
		"age":            30,
		"gender":         "male",
		"height_cm":      175,
		"weight_kg":      70,
		"activity_level": "sedentary",
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: status=%d body=%s", rec.Code, rec.Body.String())
	}
	token, _ := decode(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("signup did not return a token")
	}
	return token
}

func TestFullFlow(t *testing.T) {
	r := setupTestServer(t)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	tokenA := signupUser(t, r, "alice"+suffix)

	// login works with the same credentials and is generic on failure
	rec := performRequest(r, http.MethodPost, "/login", map[string]string{
		"username": "alice" + suffix, "password": "wrong",
	}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", rec.Code)
	}
	rec = performRequest(r, http.MethodPost, "/login", map[string]string{
		"username": "alice" + suffix, "password": "secret123",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}

	// dashboard reflects the signup profile target (70kg/175cm/30y male sedentary)
	rec = performRequest(r, http.MethodGet, "/dashboard", nil, tokenA)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	dash := decode(t, rec)
	if target, _ := dash["calorie_target"].(float64); target != 2008.5 {
		t.Fatalf("expected calorie_target 2008.5, got %v", dash["calorie_target"])
	}

	// the catalog is grouped and non-empty
	rec = performRequest(r, http.MethodGet, "/add-food", nil, tokenA)
	if rec.Code != http.StatusOK {
		t.Fatalf("add-food GET failed: %d", rec.Code)
	}
	catalog := decode(t, rec)
	groups, _ := catalog["foods_by_category"].([]any)
	if len(groups) == 0 {
		t.Fatal("expected a seeded food catalog")
	}
	firstGroup := groups[0].(map[string]any)
	firstFood := firstGroup["foods"].([]any)[0].(map[string]any)
	foodID := uint(firstFood["ID"].(float64))

	// log 150g of the first food
	rec = performRequest(r, http.MethodPost, "/add-food", map[string]any{
		"food_id": foodID, "quantity_g": 150,
	}, tokenA)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add-food POST failed: %d %s", rec.Code, rec.Body.String())
	}
	entry := decode(t, rec)["log"].(map[string]any)
	logID := uint(entry["ID"].(float64))

	// a malformed history date falls back to today without an error
	rec = performRequest(r, http.MethodGet, "/history?date=not-a-date", nil, tokenA)
	if rec.Code != http.StatusOK {
		t.Fatalf("history with bad date should still succeed, got %d", rec.Code)
	}
	history := decode(t, rec)
	if history["selected_date"] != time.Now().Format("2006-01-02") {
		t.Fatalf("expected fallback to today, got %v", history["selected_date"])
	}

	rec = performRequest(r, http.MethodGet, "/weekly-summary", nil, tokenA)
	if rec.Code != http.StatusOK {
		t.Fatalf("weekly summary failed: %d %s", rec.Code, rec.Body.String())
	}

	// another user cannot see or delete alice's entry
	tokenB := signupUser(t, r, "bob"+suffix)
	rec = performRequest(r, http.MethodGet, fmt.Sprintf("/delete-log/%d", logID), nil, tokenB)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign log, got %d", rec.Code)
	}
	rec = performRequest(r, http.MethodPost, fmt.Sprintf("/delete-log/%d", logID), nil, tokenB)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting foreign log, got %d", rec.Code)
	}

	// the entry must still be there for its owner
	rec = performRequest(r, http.MethodGet, fmt.Sprintf("/delete-log/%d", logID), nil, tokenA)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner lost their log after foreign delete attempt: %d", rec.Code)
	}

	// and the owner can delete it
	rec = performRequest(r, http.MethodPost, fmt.Sprintf("/delete-log/%d", logID), nil, tokenA)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete failed: %d %s", rec.Code, rec.Body.String())
	}
}

func TestSeedFoodsIsIdempotent(t *testing.T) {
	setupTestServer(t)

	created, _, err := services.SeedFoods()
	if err != nil {
		t.Fatalf("second seed run failed: %v", err)
	}
	if created != 0 {
		t.Fatalf("re-seeding created %d duplicate rows", created)
	}
}

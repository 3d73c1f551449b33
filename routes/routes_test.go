package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"suuq-storefront/authapi"
	"suuq-storefront/cart"
	"suuq-storefront/catalog"
	"suuq-storefront/middleware"
	"suuq-storefront/models"
	"suuq-storefront/search"
	"suuq-storefront/session"
	"suuq-storefront/storage"
	"suuq-storefront/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("CLIENT_TOKEN_SECRET", "test-secret-for-routes")
}

// setupTestRouter wires the full route table against fake remote services.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/status":
			json.NewEncoder(w).Encode(map[string]interface{}{"isLoggedIn": false})
		case "/api/auth/logout":
			json.NewEncoder(w).Encode(map[string]string{"message": "Logged out successfully"})
		case "/api/data/products":
			json.NewEncoder(w).Encode([]models.Product{{ID: "p1", Name: "Phone", Price: 300}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(upstream.Close)

	st, err := storage.Open(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	authClient := authapi.NewClient(upstream.URL)
	r := gin.New()
	SetupRoutes(r,
		cart.NewStore(st),
		session.NewController(authClient),
		authClient,
		catalog.NewClient(upstream.URL),
		search.NewHistory(st),
	)
	return r
}

func clientCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateClientToken()
	if err != nil {
		t.Fatal(err)
	}
	return &http.Cookie{Name: middleware.ClientTokenCookie, Value: token}
}

func TestPublicRoutesReachable(t *testing.T) {
	r := setupTestRouter(t)

	paths := []string{
		"/api/auth/status",
		"/api/cart",
		"/api/products",
		"/api/products/p1",
		"/api/searches/recent",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestFirstResponseSetsClientToken(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/cart", nil))

	found := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.ClientTokenCookie {
			found = true
		}
	}
	if !found {
		t.Error("expected the first response to set a client token cookie")
	}
}

func TestCartMutationRequiresClientToken(t *testing.T) {
	r := setupTestRouter(t)

	payload, _ := json.Marshal(map[string]interface{}{
		"product": models.Product{ID: "p1", Name: "Phone", Price: 300},
	})

	req := httptest.NewRequest("POST", "/api/cart", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/api/cart", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(clientCookie(t))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogoutRoute(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/auth/logout", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSearchRouteRecordsTerm(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/search?q=phone", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/searches/recent", nil))

	var body struct {
		Searches []string `json:"searches"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Searches) != 1 || body.Searches[0] != "phone" {
		t.Errorf("expected [phone], got %v", body.Searches)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/middleware"
	"storefront/models"
	"storefront/persistence"
	"storefront/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"
)

var testSecret = []byte("test-secret")

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateToken(testSecret, models.User{ID: "1", Email: "john@example.com"})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

func setupAuthTest(t *testing.T) (*store.AuthStore, *gin.Engine) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	authStore := store.NewAuthStore(persistence.NewMemory(), time.Millisecond, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewAuthHandler(authStore, testSecret, logger)
	router.POST("/login", handler.Login)
	router.POST("/signup", handler.Signup)
	router.POST("/logout", handler.Logout)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(testSecret))
	protected.GET("/profile", handler.GetProfile)
	protected.GET("/wishlist", handler.GetWishlist)
	protected.POST("/wishlist/:id", handler.AddToWishlist)
	protected.GET("/orders", handler.GetOrders)

	return authStore, router
}

func TestAuthHandler_Login_Success(t *testing.T) {
	authStore, router := setupAuthTest(t)

	w := doJSON(router, "POST", "/login", models.LoginRequest{
		Email:    "john@example.com",
		Password: "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("Expected a session token")
	}
	if resp.User.Name != "John Doe" {
		t.Errorf("Expected user John Doe, got %q", resp.User.Name)
	}
	if !authStore.IsAuthenticated() {
		t.Error("Expected store to be authenticated")
	}

	// The issued token passes the bearer middleware.
	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	pw := httptest.NewRecorder()
	router.ServeHTTP(pw, req)
	if pw.Code != http.StatusOK {
		t.Errorf("Expected status %d from /profile, got %d", http.StatusOK, pw.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	authStore, router := setupAuthTest(t)

	w := doJSON(router, "POST", "/login", models.LoginRequest{
		Email:    "john@example.com",
		Password: "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if authStore.IsAuthenticated() {
		t.Error("Expected store to stay anonymous")
	}
}

func TestAuthHandler_Signup_Conflict(t *testing.T) {
	_, router := setupAuthTest(t)

	w := doJSON(router, "POST", "/signup", models.SignupRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "anypw",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	_, router := setupAuthTest(t)

	w := doJSON(router, "POST", "/signup", models.SignupRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "secretpw",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
}

func TestAuthHandler_ProfileRequiresToken(t *testing.T) {
	_, router := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthHandler_Wishlist(t *testing.T) {
	authStore, router := setupAuthTest(t)
	token := bearerToken(t)

	w := doAuthJSON(router, token, "POST", "/wishlist/5", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	doAuthJSON(router, token, "POST", "/wishlist/5", nil)

	if got := authStore.Wishlist(); len(got) != 1 || got[0] != "5" {
		t.Errorf("Expected wishlist [5], got %v", got)
	}
}

func TestAuthHandler_WishlistRequiresToken(t *testing.T) {
	_, router := setupAuthTest(t)

	w := doJSON(router, "POST", "/wishlist/5", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

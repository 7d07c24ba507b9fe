package handlers

import (
	"net/http"

	"storefront/middleware"
	"storefront/models"
	"storefront/store"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth      *store.AuthStore
	jwtSecret []byte
	logger    *zap.Logger
}

func NewAuthHandler(auth *store.AuthStore, jwtSecret []byte, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx, span := otel.Tracer("storefront").Start(c.Request.Context(), "Login")
	defer span.End()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.String("email", req.Email))

	ok := h.auth.Login(ctx, req.Email, req.Password)
	middleware.RecordLoginAttempt(ok)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	user := h.auth.User()
	token, err := middleware.GenerateToken(h.jwtSecret, *user)
	if err != nil {
		h.logger.Error("Failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: *user})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	ctx, span := otel.Tracer("storefront").Start(c.Request.Context(), "Signup")
	defer span.End()

	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.String("email", req.Email))

	if !h.auth.Signup(ctx, req.Name, req.Email, req.Password) {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	user := h.auth.User()
	token, err := middleware.GenerateToken(h.jwtSecret, *user)
	if err != nil {
		h.logger.Error("Failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, models.LoginResponse{Token: token, User: *user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	state := h.auth.State()
	if !state.IsAuthenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":     state.User,
		"wishlist": state.Wishlist,
		"orders":   state.Orders,
	})
}

func (h *AuthHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"wishlist": h.auth.Wishlist()})
}

func (h *AuthHandler) AddToWishlist(c *gin.Context) {
	id := c.Param("id")
	h.auth.AddToWishlist(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"wishlist": h.auth.Wishlist()})
}

func (h *AuthHandler) RemoveFromWishlist(c *gin.Context) {
	id := c.Param("id")
	h.auth.RemoveFromWishlist(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"wishlist": h.auth.Wishlist()})
}

func (h *AuthHandler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.auth.Orders()})
}

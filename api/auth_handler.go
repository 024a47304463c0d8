package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencourt/court-booking-backend/auth"
)

type AuthService interface {
	Register(ctx context.Context, params auth.RegisterParams) (auth.User, auth.TokenPair, error)
	Login(ctx context.Context, phoneNumber, password string) (auth.User, auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error)
	Logout(ctx context.Context, userID string) error
	GetUser(ctx context.Context, id string) (auth.User, error)
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.POST("/register", h.RegisterUser)
	rg.POST("/login", h.Login)
	rg.POST("/refresh-token", h.RefreshToken)
	rg.POST("/logout", authRequired, h.Logout)
	rg.GET("/user/:userId", h.GetUser)
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var params auth.RegisterParams

	if err := c.BindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	user, tokens, err := h.service.Register(c.Request.Context(), params)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "required registration fields missing"})
		} else if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		} else if errors.Is(err, auth.ErrPhoneTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "phone number already registered"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		}

		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":         user,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		PhoneNumber string `json:"phoneNumber"`
		Password    string `json:"password"`
	}

	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	user, tokens, err := h.service.Login(c.Request.Context(), body.PhoneNumber, body.Password)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid phone number or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}

	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), body.RefreshToken)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrTokenExpired) || errors.Is(err, auth.ErrTokenRevoked) {
			c.JSON(http.StatusForbidden, gin.H{"error": "refresh token rejected"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh token"})
		}

		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	userID := c.Param("userId")

	user, err := h.service.GetUser(c.Request.Context(), userID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		}

		return
	}

	c.JSON(http.StatusOK, user)
}

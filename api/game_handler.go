package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opencourt/court-booking-backend/booking"
	"github.com/opencourt/court-booking-backend/game"
)

type GameService interface {
	CreateGame(ctx context.Context, params game.CreateGameParams) (game.Game, error)
	FindGameByID(ctx context.Context, id string) (game.Game, error)
	RequestJoin(ctx context.Context, gameID, userID, comment string) error
	AcceptRequest(ctx context.Context, gameID, adminID, userID string) (game.Game, error)
	RejectRequest(ctx context.Context, gameID, adminID, userID string) error
	CancelGame(ctx context.Context, gameID, adminID string) error
	RecomputeMatchFull(ctx context.Context, gameID, callerID string) (bool, error)
	GamePlayers(ctx context.Context, gameID string) ([]game.PlayerProfile, error)
	GameRequests(ctx context.Context, gameID string) ([]game.RequestProfile, error)
	ListPublicUpcoming(ctx context.Context, coords *game.Coordinates, page, limit int) (game.Page, error)
	ListUpcomingForUser(ctx context.Context, userID string) ([]game.Summary, error)
}

type GameHandler struct {
	service GameService
}

func NewGameHandler(service GameService) *GameHandler {
	return &GameHandler{service: service}
}

func (h *GameHandler) Register(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/upcoming", authRequired, h.ListUpcoming)
	rg.POST("/creategame", authRequired, h.Create)

	rg.POST("/:gameId/request", authRequired, h.RequestJoin)
	rg.GET("/:gameId/requests", authRequired, h.GetRequests)
	rg.GET("/:gameId/players", h.GetPlayers)
	rg.GET("/:gameId", h.GetByID)

	rg.POST("/accept", authRequired, h.Accept)
	rg.POST("/reject", authRequired, h.Reject)
	rg.POST("/cancel", authRequired, h.Cancel)
	rg.POST("/toggle-match-full", authRequired, h.ToggleMatchFull)
}

type createGamePayload struct {
	Sport         string    `json:"sport"`
	VenueID       string    `json:"venueId"`
	CourtNumber   int       `json:"courtNumber"`
	GameStartTime time.Time `json:"gameStartTime"`
	GameEndTime   time.Time `json:"gameEndTime"`
	Visibility    string    `json:"visibility"`
	MaxPlayers    int       `json:"maxPlayers"`
	Instruction   string    `json:"instruction"`
	Amount        int       `json:"amount"`
}

func (h *GameHandler) Create(c *gin.Context) {
	var payload createGamePayload

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	created, err := h.service.CreateGame(c.Request.Context(), game.CreateGameParams{
		Sport:       payload.Sport,
		VenueID:     payload.VenueID,
		CourtNumber: payload.CourtNumber,
		StartTime:   payload.GameStartTime,
		EndTime:     payload.GameEndTime,
		Visibility:  payload.Visibility,
		MaxPlayers:  payload.MaxPlayers,
		Instruction: payload.Instruction,
		AdminID:     c.GetString("userID"),
		Amount:      payload.Amount,
	})

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, game.ErrInvalidWindow),
			errors.Is(err, game.ErrInvalidCapacity),
			errors.Is(err, game.ErrInvalidVisibility),
			errors.Is(err, game.ErrOutsideOpeningHours):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrVenueNotFound), errors.Is(err, booking.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "slot already booked"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
		}

		return
	}

	c.JSON(http.StatusCreated, gin.H{"game": created})
}

// GET /?page=1&limit=10&lng=85.3240&lat=27.7172
func (h *GameHandler) List(c *gin.Context) {
	page, pageErr := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, limitErr := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if pageErr != nil || limitErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse pagination"})
		return
	}

	var coords *game.Coordinates

	latQuery := c.Query("lat")
	lngQuery := c.Query("lng")

	if latQuery != "" && lngQuery != "" {
		lat, latErr := strconv.ParseFloat(latQuery, 64)
		lng, lngErr := strconv.ParseFloat(lngQuery, 64)

		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse coordinates"})
			return
		}

		coords = &game.Coordinates{Lat: lat, Lng: lng}
	}

	result, err := h.service.ListPublicUpcoming(c.Request.Context(), coords, page, limit)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch games"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GameHandler) ListUpcoming(c *gin.Context) {
	games, err := h.service.ListUpcomingForUser(c.Request.Context(), c.GetString("userID"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch upcoming games"})
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) GetByID(c *gin.Context) {
	found, err := h.service.FindGameByID(c.Request.Context(), c.Param("gameId"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, game.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch game"})
		}

		return
	}

	c.JSON(http.StatusOK, found)
}

func (h *GameHandler) RequestJoin(c *gin.Context) {
	var body struct {
		Comment string `json:"comment"`
	}

	// comment is optional; an empty body is fine
	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
			return
		}
	}

	err := h.service.RequestJoin(c.Request.Context(), c.Param("gameId"), c.GetString("userID"), body.Comment)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, game.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		case errors.Is(err, game.ErrDuplicateRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "request already sent"})
		case errors.Is(err, game.ErrGameNotActive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "game is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send request"})
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request sent successfully"})
}

type requestDecisionPayload struct {
	GameID string `json:"gameId"`
	UserID string `json:"userId"`
}

func (h *GameHandler) Accept(c *gin.Context) {
	var payload requestDecisionPayload

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.AcceptRequest(c.Request.Context(), payload.GameID, c.GetString("userID"), payload.UserID)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, game.ErrGameNotFound), errors.Is(err, game.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, game.ErrMatchFull):
			c.JSON(http.StatusConflict, gin.H{"error": "game is already full"})
		case errors.Is(err, game.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the game admin can accept requests"})
		case errors.Is(err, game.ErrGameNotActive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "game is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept request"})
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"game": updated})
}

func (h *GameHandler) Reject(c *gin.Context) {
	var payload requestDecisionPayload

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.RejectRequest(c.Request.Context(), payload.GameID, c.GetString("userID"), payload.UserID)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, game.ErrGameNotFound), errors.Is(err, game.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, game.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the game admin can reject requests"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reject request"})
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request rejected"})
}

func (h *GameHandler) Cancel(c *gin.Context) {
	var payload struct {
		GameID string `json:"gameId"`
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.CancelGame(c.Request.Context(), payload.GameID, c.GetString("userID"))

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, game.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		case errors.Is(err, game.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the game admin can cancel the game"})
		case errors.Is(err, game.ErrGameNotActive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "game is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel game"})
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "game cancelled"})
}

func (h *GameHandler) ToggleMatchFull(c *gin.Context) {
	var payload struct {
		GameID string `json:"gameId"`
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	matchFull, err := h.service.RecomputeMatchFull(c.Request.Context(), payload.GameID, c.GetString("userID"))

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, game.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		case errors.Is(err, game.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the game admin can update the flag"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update match full status"})
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"matchFull": matchFull})
}

func (h *GameHandler) GetPlayers(c *gin.Context) {
	players, err := h.service.GamePlayers(c.Request.Context(), c.Param("gameId"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, game.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch players"})
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{"players": players})
}

func (h *GameHandler) GetRequests(c *gin.Context) {
	requests, err := h.service.GameRequests(c.Request.Context(), c.Param("gameId"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, game.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch requests"})
		}

		return
	}

	c.JSON(http.StatusOK, requests)
}

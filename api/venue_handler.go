package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opencourt/court-booking-backend/venue"
)

type VenueService interface {
	ListVenues(ctx context.Context, coords *venue.Coordinates, page, limit int) (venue.Page, error)
	FindVenueByID(ctx context.Context, id string) (venue.Venue, error)
}

type VenueHandler struct {
	service VenueService
}

func NewVenueHandler(service VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

func (h *VenueHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/venues", h.List)
	rg.GET("/venues/:venueId", h.GetByID)
}

// GET /venues?page=1&limit=10&lng=85.3240&lat=27.7172
func (h *VenueHandler) List(c *gin.Context) {
	page, pageErr := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, limitErr := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if pageErr != nil || limitErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse pagination"})
		return
	}

	var coords *venue.Coordinates

	latQuery := c.Query("lat")
	lngQuery := c.Query("lng")

	if latQuery != "" && lngQuery != "" {
		lat, latErr := strconv.ParseFloat(latQuery, 64)
		lng, lngErr := strconv.ParseFloat(lngQuery, 64)

		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse coordinates"})
			return
		}

		coords = &venue.Coordinates{Lat: lat, Lng: lng}
	}

	result, err := h.service.ListVenues(c.Request.Context(), coords, page, limit)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve venues"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *VenueHandler) GetByID(c *gin.Context) {
	found, err := h.service.FindVenueByID(c.Request.Context(), c.Param("venueId"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, venue.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch venue"})
		}

		return
	}

	c.JSON(http.StatusOK, found)
}

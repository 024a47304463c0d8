package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	bk "github.com/opencourt/court-booking-backend/booking"
)

type BookingService interface {
	Reserve(ctx context.Context, b bk.Booking) (bk.Booking, error)
	FindBookingByID(ctx context.Context, id string) (bk.Booking, error)
	ListBookings(ctx context.Context, filter bk.Filter, page, limit int) ([]bk.Booking, int, error)
	AcceptBooking(ctx context.Context, id, reviewerID string) error
	RejectBooking(ctx context.Context, id, reviewerID string) error
	CancelBooking(ctx context.Context, id, userID string) error
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register wires the booking routes onto two groups: slot claiming
// lives under the venue prefix, review and listing under bookings.
func (h *BookingHandler) Register(bookings, venue *gin.RouterGroup, authRequired gin.HandlerFunc) {
	venue.POST("/book", authRequired, h.Book)

	bookings.GET("", authRequired, h.List)
	bookings.GET("/:id", authRequired, h.GetByID)
	bookings.PATCH("/:id/accept", authRequired, h.Accept)
	bookings.PATCH("/:id/reject", authRequired, h.Reject)
	bookings.PATCH("/:id/cancel", authRequired, h.Cancel)
}

type bookPayload struct {
	VenueID     string    `json:"venueId"`
	CourtNumber int       `json:"courtNumber"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Amount      int       `json:"amount"`
	GameID      string    `json:"gameId"`
}

func (h *BookingHandler) Book(c *gin.Context) {
	var payload bookPayload

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	booked, err := h.service.Reserve(c.Request.Context(), bk.Booking{
		VenueID:     payload.VenueID,
		CourtNumber: payload.CourtNumber,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		UserID:      c.GetString("userID"),
		GameID:      payload.GameID,
		Amount:      payload.Amount,
	})

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, bk.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking time slot"})
		case errors.Is(err, bk.ErrVenueNotFound), errors.Is(err, bk.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, bk.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "slot already booked"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}

		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booked})
}

func (h *BookingHandler) List(c *gin.Context) {
	page, pageErr := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, limitErr := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if pageErr != nil || limitErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse pagination"})
		return
	}

	filter := bk.Filter{
		VenueID:  c.Query("venueId"),
		Status:   c.Query("status"),
		Upcoming: c.Query("upcoming") == "true",
	}

	if paidQuery := c.Query("paid"); paidQuery != "" {
		paid := paidQuery == "true"
		filter.Paid = &paid
	}

	if dateQuery := c.Query("date"); dateQuery != "" {
		date, err := time.Parse(time.DateOnly, dateQuery)

		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
			return
		}

		filter.Date = date
	}

	startQuery := c.Query("startDate")
	endQuery := c.Query("endDate")

	if startQuery != "" && endQuery != "" {
		from, err := time.Parse(time.DateOnly, startQuery)

		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse startDate"})
			return
		}

		to, err := time.Parse(time.DateOnly, endQuery)

		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse endDate"})
			return
		}

		filter.From = from
		filter.To = to.AddDate(0, 0, 1)
	}

	bookings, total, err := h.service.ListBookings(c.Request.Context(), filter, page, limit)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     page,
		"limit":    limit,
		"total":    total,
		"bookings": bookings,
	})
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	booked, err := h.service.FindBookingByID(c.Request.Context(), c.Param("id"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		}

		return
	}

	c.JSON(http.StatusOK, booked)
}

func (h *BookingHandler) Accept(c *gin.Context) {
	err := h.service.AcceptBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))

	if h.writeReviewError(c, err, "accept") {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking accepted"})
}

func (h *BookingHandler) Reject(c *gin.Context) {
	err := h.service.RejectBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))

	if h.writeReviewError(c, err, "reject") {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking rejected"})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	err := h.service.CancelBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))

	if h.writeReviewError(c, err, "cancel") {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *BookingHandler) writeReviewError(c *gin.Context, err error, action string) bool {
	if err == nil {
		return false
	}

	c.Error(err)

	switch {
	case errors.Is(err, bk.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, bk.ErrInvalidBookingState):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
	case errors.Is(err, bk.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to " + action + " this booking"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action + " booking"})
	}

	return true
}
